// Package domain contains the core nutrition entities, ports and the pure
// aggregation and search rules built on them.
package domain

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// FoodItem is a catalog entry available for search.
type FoodItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `json:"servingSize"`
}

// FoodCatalog is the port for reading the food catalog.
type FoodCatalog interface {
	ListFoods(ctx context.Context) ([]FoodItem, error)
	GetFood(ctx context.Context, id string) (*FoodItem, error)
}

// SearchFoods returns the catalog items whose name or brand contains query,
// ignoring case. A blank query matches nothing. Catalog order is preserved.
func SearchFoods(catalog []FoodItem, query string) []FoodItem {
	out := []FoodItem{}
	if strings.TrimSpace(query) == "" {
		return out
	}

	// cases.Caser is stateful, so one per call.
	lower := cases.Lower(language.Und)
	fold := func(s string) string { return lower.String(norm.NFC.String(s)) }

	q := fold(query)
	for _, f := range catalog {
		if strings.Contains(fold(f.Name), q) || (f.Brand != "" && strings.Contains(fold(f.Brand), q)) {
			out = append(out, f)
		}
	}
	return out
}
