package postgres

import (
	"context"
	"time"

	"nutrition/internal/domain"
)

const entryColumns = "id, name, calories, protein, carbs, fat, time_of_day, local_day, created_at"

func scanEntry(row rowScanner) (domain.FoodLogEntry, error) {
	var e domain.FoodLogEntry
	err := row.Scan(&e.ID, &e.Name, &e.Calories, &e.Protein, &e.Carbs, &e.Fat, &e.Time, &e.Day, &e.CreatedAt)
	return e, err
}

// AddFoodLogEntry inserts a new log entry.
func (d *DB) AddFoodLogEntry(ctx context.Context, e domain.FoodLogEntry) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO food_log_entries("+entryColumns+") VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9);",
		e.ID, e.Name, e.Calories, e.Protein, e.Carbs, e.Fat, e.Time, e.Day, e.CreatedAt.UTC(),
	)
	return err
}

// DeleteFoodLogEntry removes a log entry by ID.
func (d *DB) DeleteFoodLogEntry(ctx context.Context, id string) error {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM food_log_entries WHERE id=$1;", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListFoodLogForLocalDay returns the entries logged on a local calendar day.
func (d *DB) ListFoodLogForLocalDay(ctx context.Context, localDay string) ([]domain.FoodLogEntry, error) {
	if _, err := time.ParseInLocation("2006-01-02", localDay, time.Local); err != nil {
		return nil, err
	}
	return d.queryEntries(ctx,
		"SELECT "+entryColumns+" FROM food_log_entries WHERE local_day=$1 ORDER BY created_at;", localDay)
}

// ListRecentFoodLogEntries returns the most recent entries up to limit.
func (d *DB) ListRecentFoodLogEntries(ctx context.Context, limit int) ([]domain.FoodLogEntry, error) {
	if limit < 0 {
		limit = 0
	}
	return d.queryEntries(ctx,
		"SELECT "+entryColumns+" FROM food_log_entries ORDER BY created_at DESC LIMIT $1;", limit)
}

func (d *DB) queryEntries(ctx context.Context, query string, args ...any) ([]domain.FoodLogEntry, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := []domain.FoodLogEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
