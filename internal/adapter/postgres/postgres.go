// Package postgres implements the domain repositories on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"nutrition/internal/domain"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Ensure interfaces are met.
var _ domain.FoodCatalog = (*DB)(nil)
var _ domain.FoodLogRepository = (*DB)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS food_items (seq BIGSERIAL, id TEXT PRIMARY KEY, name TEXT NOT NULL CHECK(name <> ''), brand TEXT NOT NULL DEFAULT '', calories DOUBLE PRECISION NOT NULL CHECK(calories >= 0), protein DOUBLE PRECISION NOT NULL CHECK(protein >= 0), carbs DOUBLE PRECISION NOT NULL CHECK(carbs >= 0), fat DOUBLE PRECISION NOT NULL CHECK(fat >= 0), serving_size TEXT NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_food_items_seq ON food_items(seq);",
		"CREATE TABLE IF NOT EXISTS food_log_entries (id TEXT PRIMARY KEY, name TEXT NOT NULL, calories DOUBLE PRECISION NOT NULL, protein DOUBLE PRECISION NOT NULL, carbs DOUBLE PRECISION NOT NULL, fat DOUBLE PRECISION NOT NULL, time_of_day TEXT NOT NULL, local_day TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_food_log_entries_local_day ON food_log_entries(local_day);",
		"CREATE INDEX IF NOT EXISTS idx_food_log_entries_created_at ON food_log_entries(created_at);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SeedCatalog inserts items when the catalog is empty. It reports whether
// anything was inserted.
func (d *DB) SeedCatalog(ctx context.Context, items []domain.FoodItem) (bool, error) {
	var count int
	if err := d.sql.QueryRowContext(ctx, "SELECT COUNT(1) FROM food_items;").Scan(&count); err != nil {
		return false, fmt.Errorf("seed: count food_items: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, f := range items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO food_items(id, name, brand, calories, protein, carbs, fat, serving_size) VALUES($1, $2, $3, $4, $5, $6, $7, $8);",
			f.ID, f.Name, f.Brand, f.Calories, f.Protein, f.Carbs, f.Fat, f.ServingSize,
		); err != nil {
			return false, fmt.Errorf("seed: insert %s: %w", f.ID, err)
		}
	}
	return true, tx.Commit()
}
