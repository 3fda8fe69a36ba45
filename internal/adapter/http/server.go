// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"nutrition/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	nutrition *app.NutritionService
	search    *app.SearchService
	history   *app.HistoryService
	webDir    string
	log       *zap.Logger
	latency   time.Duration
}

// New creates a Server wired to the given application services.
func New(ns *app.NutritionService, ss *app.SearchService, hs *app.HistoryService, webDir string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{nutrition: ns, search: ss, history: hs, webDir: webDir, log: log}
}

// WithLatency delays every API response except /health by d, emulating a
// remote data source. Zero disables the delay.
func (s *Server) WithLatency(d time.Duration) *Server {
	s.latency = d
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	data := http.NewServeMux()
	data.HandleFunc("/foods/search", s.handleFoodSearch)
	data.HandleFunc("/foods/{id}", s.handleFoodGet)

	data.HandleFunc("/log/today", s.handleLogToday)
	data.HandleFunc("/log/add-food", s.handleLogAddFood)
	data.HandleFunc("/log/recent", s.handleLogRecent)
	data.HandleFunc("/log/undo-last", s.handleLogUndoLast)

	data.HandleFunc("/stats/today", s.handleStatsToday)
	data.HandleFunc("/charts/daily", s.handleChartsDaily)

	api.Handle("/", s.withLatency(data))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
