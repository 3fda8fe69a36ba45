package postgres

import (
	"context"
	"database/sql"
	"errors"

	"nutrition/internal/domain"
)

const foodColumns = "id, name, brand, calories, protein, carbs, fat, serving_size"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFood(row rowScanner) (domain.FoodItem, error) {
	var f domain.FoodItem
	err := row.Scan(&f.ID, &f.Name, &f.Brand, &f.Calories, &f.Protein, &f.Carbs, &f.Fat, &f.ServingSize)
	return f, err
}

// ListFoods returns the whole catalog in insertion order.
func (d *DB) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT "+foodColumns+" FROM food_items ORDER BY seq;")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.FoodItem{}
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// GetFood returns a catalog item by ID.
func (d *DB) GetFood(ctx context.Context, id string) (*domain.FoodItem, error) {
	f, err := scanFood(d.sql.QueryRowContext(ctx, "SELECT "+foodColumns+" FROM food_items WHERE id=$1;", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
