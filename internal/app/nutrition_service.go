// Package app holds the application services and business logic.
package app

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"nutrition/internal/domain"
)

// NutritionService encapsulates food-log and daily-stats use cases.
type NutritionService struct {
	repo    domain.FoodLogRepository
	catalog domain.FoodCatalog
	goals   domain.Goals

	now   func() time.Time
	newID func() string
}

// NewNutritionService creates a NutritionService backed by the given log
// repository and catalog. goals are the configured defaults used when a
// caller does not supply its own.
func NewNutritionService(repo domain.FoodLogRepository, catalog domain.FoodCatalog, goals domain.Goals) *NutritionService {
	return &NutritionService{
		repo:    repo,
		catalog: catalog,
		goals:   goals,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Goals returns the configured default goals.
func (s *NutritionService) Goals() domain.Goals {
	return s.goals
}

// TodayEntries returns the entries logged on the given local day. Order is
// whatever the repository stores; sorting is left to the caller.
func (s *NutritionService) TodayEntries(ctx context.Context, today string) ([]domain.FoodLogEntry, error) {
	return s.repo.ListFoodLogForLocalDay(ctx, today)
}

// Stats aggregates the given day's entries against goals.
func (s *NutritionService) Stats(ctx context.Context, today string, goals domain.Goals) (domain.NutritionStats, error) {
	if err := goals.Validate(); err != nil {
		return domain.NutritionStats{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	entries, err := s.repo.ListFoodLogForLocalDay(ctx, today)
	if err != nil {
		return domain.NutritionStats{}, err
	}
	return domain.ComputeStats(entries, goals), nil
}

// EntriesByMeal groups the given day's entries by meal type, ordered by time
// within each meal.
func (s *NutritionService) EntriesByMeal(ctx context.Context, today string) (map[domain.MealType][]domain.FoodLogEntry, error) {
	entries, err := s.repo.ListFoodLogForLocalDay(ctx, today)
	if err != nil {
		return nil, err
	}
	return domain.GroupByMeal(entries)
}

// LogEntry validates and stores a new entry for today. ID, day and creation
// time are assigned here; an empty Time defaults to the current time.
func (s *NutritionService) LogEntry(ctx context.Context, e domain.FoodLogEntry) (domain.FoodLogEntry, error) {
	now := s.now()
	if e.Time == "" {
		e.Time = now.In(time.Local).Format("15:04")
	}
	if err := e.Validate(); err != nil {
		return domain.FoodLogEntry{}, err
	}
	e.ID = s.newID()
	e.Day = now.In(time.Local).Format("2006-01-02")
	e.CreatedAt = now.UTC()
	if err := s.repo.AddFoodLogEntry(ctx, e); err != nil {
		return domain.FoodLogEntry{}, err
	}
	return e, nil
}

// AddFood logs servings of a catalog item eaten now.
func (s *NutritionService) AddFood(ctx context.Context, foodID string, servings float64) (domain.FoodLogEntry, error) {
	if math.IsNaN(servings) || servings <= 0 || servings > 100 {
		return domain.FoodLogEntry{}, fmt.Errorf("%w: servings must be within (0, 100]", domain.ErrMalformedRecord)
	}
	food, err := s.catalog.GetFood(ctx, foodID)
	if err != nil {
		return domain.FoodLogEntry{}, err
	}
	e := food.ToLogEntry(servings, s.now().In(time.Local))
	e.ID = s.newID()
	if err := s.repo.AddFoodLogEntry(ctx, e); err != nil {
		return domain.FoodLogEntry{}, err
	}
	return e, nil
}

// ListRecent returns the most recent entries up to limit.
func (s *NutritionService) ListRecent(ctx context.Context, limit int) ([]domain.FoodLogEntry, error) {
	if limit < 0 {
		limit = 0
	}
	return s.repo.ListRecentFoodLogEntries(ctx, limit)
}

// UndoLast deletes the most recent entry.
func (s *NutritionService) UndoLast(ctx context.Context) (bool, string, error) {
	items, err := s.repo.ListRecentFoodLogEntries(ctx, 1)
	if err != nil {
		return false, "", err
	}
	if len(items) == 0 {
		return false, "", nil
	}
	if err := s.repo.DeleteFoodLogEntry(ctx, items[0].ID); err != nil {
		return false, "", err
	}
	return true, items[0].ID, nil
}
