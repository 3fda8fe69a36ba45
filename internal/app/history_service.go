package app

import (
	"context"
	"errors"
	"time"

	"nutrition/internal/domain"
)

// HistoryService encapsulates per-day consumption history use cases.
type HistoryService struct {
	repo domain.FoodLogRepository
}

// NewHistoryService creates a HistoryService backed by the given repository.
func NewHistoryService(repo domain.FoodLogRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// DayPoint is a single data point returned by GetDaily.
type DayPoint struct {
	Day     string  `json:"day"`
	Energy  float64 `json:"energy"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Entries int     `json:"entries"`
}

// GetDaily returns per-day consumed totals for the last days days, oldest
// first, with energy in the requested unit.
func (s *HistoryService) GetDaily(ctx context.Context, days int, unit string) ([]DayPoint, error) {
	if unit != "kcal" && unit != "kJ" {
		return nil, errors.New("unit must be \"kcal\" or \"kJ\"")
	}
	if days < 1 {
		days = 1
	}
	if days > 366 {
		days = 366
	}

	today := time.Now().In(time.Local)
	points := make([]DayPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		dayStr := today.AddDate(0, 0, -i).Format("2006-01-02")
		entries, err := s.repo.ListFoodLogForLocalDay(ctx, dayStr)
		if err != nil {
			return nil, err
		}
		st := domain.ComputeStats(entries, domain.Goals{})
		points = append(points, DayPoint{
			Day:     dayStr,
			Energy:  domain.ConvertEnergy(st.CaloriesEaten, "kcal", unit),
			Protein: st.Protein,
			Carbs:   st.Carbs,
			Fat:     st.Fat,
			Entries: len(entries),
		})
	}
	return points, nil
}
