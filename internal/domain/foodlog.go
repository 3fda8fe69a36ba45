package domain

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// FoodLogEntry records a food consumed on a given local day.
type FoodLogEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Time      string    `json:"time"`
	Day       string    `json:"day,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FoodLogRepository is the port for food log persistence.
type FoodLogRepository interface {
	AddFoodLogEntry(ctx context.Context, e FoodLogEntry) error
	DeleteFoodLogEntry(ctx context.Context, id string) error
	ListFoodLogForLocalDay(ctx context.Context, localDay string) ([]FoodLogEntry, error)
	ListRecentFoodLogEntries(ctx context.Context, limit int) ([]FoodLogEntry, error)
}

// Validate rejects entries that could not have come from a well-formed log.
func (e FoodLogEntry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: name is required", ErrMalformedRecord)
	}
	if e.Calories < 0 || e.Protein < 0 || e.Carbs < 0 || e.Fat < 0 {
		return fmt.Errorf("%w: calories and macros must be >= 0", ErrMalformedRecord)
	}
	if _, err := ParseTimeOfDay(e.Time); err != nil {
		return err
	}
	return nil
}

// ParseTimeOfDay parses a 24-hour "HH:MM" string into its offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	if len(s) != 5 || s[2] != ':' || !isDigit(s[0]) || !isDigit(s[1]) || !isDigit(s[3]) || !isDigit(s[4]) {
		return 0, fmt.Errorf("%w: time %q must be HH:MM", ErrMalformedRecord, s)
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: time %q has invalid hour", ErrMalformedRecord, s)
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: time %q has invalid minute", ErrMalformedRecord, s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// MealType groups log entries by the part of the day they were eaten in.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Snack     MealType = "snack"
	Dinner    MealType = "dinner"
)

// MealTypeFor classifies an "HH:MM" time of day.
func MealTypeFor(timeOfDay string) (MealType, error) {
	d, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return "", err
	}
	switch hour := int(d / time.Hour); {
	case hour >= 5 && hour < 11:
		return Breakfast, nil
	case hour >= 11 && hour < 15:
		return Lunch, nil
	case hour >= 15 && hour < 20:
		return Snack, nil
	default:
		return Dinner, nil
	}
}

// GroupByMeal buckets entries by meal type, each bucket ordered by time of
// day. Entries logged at the same time keep their relative order.
func GroupByMeal(entries []FoodLogEntry) (map[MealType][]FoodLogEntry, error) {
	sorted := make([]FoodLogEntry, len(entries))
	copy(sorted, entries)
	// HH:MM is zero-padded, so string order is time order.
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	out := make(map[MealType][]FoodLogEntry)
	for _, e := range sorted {
		mt, err := MealTypeFor(e.Time)
		if err != nil {
			return nil, err
		}
		out[mt] = append(out[mt], e)
	}
	return out, nil
}

// ToLogEntry builds a new log entry for servings of f eaten at at. The caller
// assigns the ID.
func (f FoodItem) ToLogEntry(servings float64, at time.Time) FoodLogEntry {
	name := f.Name
	if f.Brand != "" {
		name = f.Brand + " " + f.Name
	}
	return FoodLogEntry{
		Name:      name,
		Calories:  f.Calories * servings,
		Protein:   f.Protein * servings,
		Carbs:     f.Carbs * servings,
		Fat:       f.Fat * servings,
		Time:      at.Format("15:04"),
		Day:       at.Format("2006-01-02"),
		CreatedAt: at.UTC(),
	}
}
