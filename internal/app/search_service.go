package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nutrition/internal/domain"
)

// SearchService encapsulates food catalog lookups.
type SearchService struct {
	catalog domain.FoodCatalog
}

// NewSearchService creates a SearchService backed by the given catalog.
func NewSearchService(catalog domain.FoodCatalog) *SearchService {
	return &SearchService{catalog: catalog}
}

// Search returns the catalog items matching query. A blank query returns an
// empty result without reading the catalog.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.FoodItem, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.FoodItem{}, nil
	}
	foods, err := s.catalog.ListFoods(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", domain.ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	return domain.SearchFoods(foods, query), nil
}

// Get returns a single catalog item.
func (s *SearchService) Get(ctx context.Context, id string) (*domain.FoodItem, error) {
	return s.catalog.GetFood(ctx, id)
}
