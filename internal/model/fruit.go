package model

// Fruit is one inventory entry.
// ID is assigned by the database on insert and never changes afterwards.
type Fruit struct {
	ID    int64  `json:"id"`
	Name  string `json:"fruit_name"`
	Count int    `json:"fruit_count"`
}
