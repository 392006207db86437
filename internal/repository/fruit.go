package repository

import (
	"context"

	"fruitapi/internal/model"
)

// FruitRepository defines data access for fruits using SQL queries only.
// No business logic here — strictly persistence operations.
type FruitRepository interface {
	// Create inserts a new fruit and returns the stored row, including the
	// database-assigned ID. fruit.ID is ignored.
	Create(ctx context.Context, fruit *model.Fruit) (*model.Fruit, error)

	// List returns every fruit, newest (highest ID) first.
	List(ctx context.Context) ([]model.Fruit, error)
}
