package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"fruitapi/internal/model"
	"fruitapi/internal/repository"
)

const fruitsTable = "fruits"

var fruitColumns = []string{"id", "fruit_name", "fruit_count"}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// FruitPostgres is a PostgreSQL implementation of repository.FruitRepository.
// Every call runs a single auto-committed statement on a pooled connection.
type FruitPostgres struct {
	db *sql.DB
}

// NewFruitPostgres creates a new FruitPostgres repository.
func NewFruitPostgres(db *sql.DB) *FruitPostgres {
	return &FruitPostgres{db: db}
}

var _ repository.FruitRepository = (*FruitPostgres)(nil)

// Create inserts a new fruit row and returns the stored record.
func (r *FruitPostgres) Create(ctx context.Context, fruit *model.Fruit) (*model.Fruit, error) {
	q, args, err := psql.Insert(fruitsTable).
		Columns("fruit_name", "fruit_count").
		Values(fruit.Name, fruit.Count).
		Suffix("RETURNING id, fruit_name, fruit_count").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	var out model.Fruit
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&out.ID, &out.Name, &out.Count); err != nil {
		return nil, fmt.Errorf("inserting fruit: %w", err)
	}
	return &out, nil
}

// List returns all fruits ordered by id, newest first.
func (r *FruitPostgres) List(ctx context.Context) ([]model.Fruit, error) {
	q, args, err := psql.Select(fruitColumns...).
		From(fruitsTable).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying fruits: %w", err)
	}
	defer rows.Close()

	items := make([]model.Fruit, 0)
	for rows.Next() {
		var f model.Fruit
		if err := rows.Scan(&f.ID, &f.Name, &f.Count); err != nil {
			return nil, fmt.Errorf("scanning fruit: %w", err)
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fruits: %w", err)
	}
	return items, nil
}
