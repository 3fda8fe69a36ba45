package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"nutrition/internal/domain"
)

func (s *Server) handleStatsToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	goals, err := goalsFromQuery(r, s.nutrition.Goals())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	unit := r.URL.Query().Get("unit")
	if unit == "" {
		unit = "kcal"
	}
	if unit != "kcal" && unit != "kJ" {
		writeError(w, http.StatusBadRequest, errors.New("unit must be \"kcal\" or \"kJ\""))
		return
	}

	today := localDayString(time.Now())
	stats, err := s.nutrition.Stats(r.Context(), today, goals)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	rings := stats.Rings()

	// Rings are ratios, so they are computed before any unit conversion.
	stats.CaloriesEaten = domain.ConvertEnergy(stats.CaloriesEaten, "kcal", unit)
	stats.CaloriesGoal = domain.ConvertEnergy(stats.CaloriesGoal, "kcal", unit)
	stats.CaloriesLeft = domain.ConvertEnergy(stats.CaloriesLeft, "kcal", unit)

	writeJSON(w, http.StatusOK, map[string]any{
		"today": today,
		"unit":  unit,
		"stats": stats,
		"rings": rings,
	})
}

// goalsFromQuery overrides base with any caloriesGoal, proteinGoal,
// carbsGoal or fatGoal query parameters.
func goalsFromQuery(r *http.Request, base domain.Goals) (domain.Goals, error) {
	var err error
	if base.Calories, err = floatQuery(r, "caloriesGoal", base.Calories); err != nil {
		return base, err
	}
	if base.Protein, err = floatQuery(r, "proteinGoal", base.Protein); err != nil {
		return base, err
	}
	if base.Carbs, err = floatQuery(r, "carbsGoal", base.Carbs); err != nil {
		return base, err
	}
	if base.Fat, err = floatQuery(r, "fatGoal", base.Fat); err != nil {
		return base, err
	}
	return base, nil
}
