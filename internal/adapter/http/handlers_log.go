package adapthttp

import (
	"net/http"
	"time"

	"nutrition/internal/domain"
)

func (s *Server) handleLogToday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	today := localDayString(time.Now())

	switch r.Method {
	case http.MethodGet:
		items, err := s.nutrition.TodayEntries(ctx, today)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		meals, err := domain.GroupByMeal(items)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"today": today, "items": items, "meals": meals})

	case http.MethodPost:
		var body struct {
			Name     string  `json:"name"`
			Calories float64 `json:"calories"`
			Protein  float64 `json:"protein"`
			Carbs    float64 `json:"carbs"`
			Fat      float64 `json:"fat"`
			Time     string  `json:"time"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		entry, err := s.nutrition.LogEntry(ctx, domain.FoodLogEntry{
			Name:     body.Name,
			Calories: body.Calories,
			Protein:  body.Protein,
			Carbs:    body.Carbs,
			Fat:      body.Fat,
			Time:     body.Time,
		})
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"today": today, "entry": entry})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLogAddFood(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		FoodID   string   `json:"foodId"`
		Servings *float64 `json:"servings"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	servings := 1.0
	if body.Servings != nil {
		servings = *body.Servings
	}
	entry, err := s.nutrition.AddFood(r.Context(), body.FoodID, servings)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": entry})
}

func (s *Server) handleLogRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	limit := intQuery(r, "limit", 20)
	items, err := s.nutrition.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleLogUndoLast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	undone, id, err := s.nutrition.UndoLast(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"undone": undone, "id": id})
}
