// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"nutrition/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu      sync.Mutex
	foods   []domain.FoodItem
	entries []domain.FoodLogEntry
}

// New creates a new in-memory database holding the given catalog.
func New(catalog []domain.FoodItem) *DB {
	foods := make([]domain.FoodItem, len(catalog))
	copy(foods, catalog)
	return &DB{foods: foods}
}

// NewSeeded creates an in-memory database loaded with the reference catalog
// and the reference log dated on today.
func NewSeeded(today time.Time) *DB {
	db := New(ReferenceCatalog())
	db.entries = ReferenceLog(today)
	return db
}

// Ensure interfaces are met.
var _ domain.FoodCatalog = (*DB)(nil)
var _ domain.FoodLogRepository = (*DB)(nil)

// --- FoodCatalog ---

// ListFoods returns a copy of the catalog in catalog order.
func (db *DB) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.FoodItem, len(db.foods))
	copy(result, db.foods)
	return result, nil
}

// GetFood returns the catalog item with the given ID.
func (db *DB) GetFood(ctx context.Context, id string) (*domain.FoodItem, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, f := range db.foods {
		if f.ID == id {
			ret := f
			return &ret, nil
		}
	}
	return nil, domain.ErrNotFound
}

// --- FoodLogRepository ---

// AddFoodLogEntry stores a log entry.
func (db *DB) AddFoodLogEntry(ctx context.Context, e domain.FoodLogEntry) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, existing := range db.entries {
		if existing.ID == e.ID {
			return errors.New("food log entry already exists")
		}
	}
	e.CreatedAt = e.CreatedAt.UTC()
	db.entries = append(db.entries, e)
	return nil
}

// DeleteFoodLogEntry deletes a log entry by ID.
func (db *DB) DeleteFoodLogEntry(ctx context.Context, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, e := range db.entries {
		if e.ID == id {
			db.entries = append(db.entries[:i], db.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ListFoodLogForLocalDay returns the entries logged on the given day in
// insertion order.
func (db *DB) ListFoodLogForLocalDay(ctx context.Context, localDay string) ([]domain.FoodLogEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, err := time.ParseInLocation("2006-01-02", localDay, time.Local); err != nil {
		return nil, err
	}

	result := []domain.FoodLogEntry{}
	for _, e := range db.entries {
		if e.Day == localDay {
			result = append(result, e)
		}
	}
	return result, nil
}

// ListRecentFoodLogEntries lists the most recent entries, newest first.
func (db *DB) ListRecentFoodLogEntries(ctx context.Context, limit int) ([]domain.FoodLogEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.FoodLogEntry, len(db.entries))
	copy(result, db.entries)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit < 0 {
		limit = 0
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
