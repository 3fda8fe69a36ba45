package app_test

import (
	"context"

	"nutrition/internal/domain"
)

type mockFoodLogRepo struct {
	addFn    func(ctx context.Context, e domain.FoodLogEntry) error
	delFn    func(ctx context.Context, id string) error
	dayFn    func(ctx context.Context, localDay string) ([]domain.FoodLogEntry, error)
	recentFn func(ctx context.Context, limit int) ([]domain.FoodLogEntry, error)
}

func (m *mockFoodLogRepo) AddFoodLogEntry(ctx context.Context, e domain.FoodLogEntry) error {
	if m.addFn != nil {
		return m.addFn(ctx, e)
	}
	return nil
}

func (m *mockFoodLogRepo) DeleteFoodLogEntry(ctx context.Context, id string) error {
	if m.delFn != nil {
		return m.delFn(ctx, id)
	}
	return nil
}

func (m *mockFoodLogRepo) ListFoodLogForLocalDay(ctx context.Context, localDay string) ([]domain.FoodLogEntry, error) {
	if m.dayFn != nil {
		return m.dayFn(ctx, localDay)
	}
	return nil, nil
}

func (m *mockFoodLogRepo) ListRecentFoodLogEntries(ctx context.Context, limit int) ([]domain.FoodLogEntry, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, limit)
	}
	return nil, nil
}

type mockCatalog struct {
	listFn func(ctx context.Context) ([]domain.FoodItem, error)
	getFn  func(ctx context.Context, id string) (*domain.FoodItem, error)
}

func (m *mockCatalog) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalog) GetFood(ctx context.Context, id string) (*domain.FoodItem, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
