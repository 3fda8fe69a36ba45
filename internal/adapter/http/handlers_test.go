package adapthttp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	adapthttp "nutrition/internal/adapter/http"
	"nutrition/internal/adapter/memory"
	"nutrition/internal/app"
	"nutrition/internal/domain"
)

// ---------------------------------------------------------------------------
// Failing catalog (function-fields pattern)
// ---------------------------------------------------------------------------

type mockCatalog struct {
	listFn func(ctx context.Context) ([]domain.FoodItem, error)
}

func (m *mockCatalog) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalog) GetFood(ctx context.Context, id string) (*domain.FoodItem, error) {
	return nil, domain.ErrNotFound
}

// ---------------------------------------------------------------------------
// Test-server helper
// ---------------------------------------------------------------------------

func newTestServer(t *testing.T, catalog domain.FoodCatalog, latency time.Duration) *httptest.Server {
	t.Helper()

	db := memory.NewSeeded(time.Now())
	if catalog == nil {
		catalog = db
	}

	ns := app.NewNutritionService(db, catalog, domain.DefaultGoals())
	ss := app.NewSearchService(catalog)
	hs := app.NewHistoryService(db)

	webDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(webDir, "index.html"), []byte("<html></html>"), 0o600); err != nil {
		t.Fatal(err)
	}

	srv := adapthttp.New(ns, ss, hs, webDir, nil).WithLatency(latency)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return m
}

func get(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.Header.Get("Content-Type") == "" {
		return resp, nil
	}
	return resp, decodeBody(t, resp)
}

func post(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.Header.Get("Content-Type") == "" {
		return resp, nil
	}
	return resp, decodeBody(t, resp)
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	resp, body := get(t, ts.URL+"/api/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["ok"] != true {
		t.Fatalf("expected ok=true, got %v", body["ok"])
	}
	if resp.Header.Get("Cache-Control") != "no-store" {
		t.Errorf("expected no-store, got %q", resp.Header.Get("Cache-Control"))
	}
}

func TestFoodSearch(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	resp, body := get(t, ts.URL+"/api/foods/search?q=chicken")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	items, ok := body["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 items, got %v", body["items"])
	}
	first := items[0].(map[string]any)
	if first["name"] != "Grilled Chicken Breast" {
		t.Errorf("expected Grilled Chicken Breast first, got %v", first["name"])
	}
}

func TestFoodSearch_BlankQuery(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	resp, body := get(t, ts.URL+"/api/foods/search?q=%20%20")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	items, ok := body["items"].([]any)
	if !ok || len(items) != 0 {
		t.Fatalf("expected empty items array, got %v", body["items"])
	}
}

func TestFoodSearch_CatalogUnavailable(t *testing.T) {
	cat := &mockCatalog{
		listFn: func(_ context.Context) ([]domain.FoodItem, error) {
			return nil, errors.New("db down")
		},
	}
	ts := newTestServer(t, cat, 0)

	resp, _ := get(t, ts.URL+"/api/foods/search?q=rice")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestFoodSearch_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil, 0)
	resp, _ := post(t, ts.URL+"/api/foods/search?q=rice", "{}")
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestFoodGet(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	resp, body := get(t, ts.URL+"/api/foods/4")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	item := body["item"].(map[string]any)
	if item["brand"] != "Fage" {
		t.Errorf("expected brand Fage, got %v", item["brand"])
	}

	resp, _ = get(t, ts.URL+"/api/foods/404")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestLogTodayGet(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	resp, body := get(t, ts.URL+"/api/log/today")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	items := body["items"].([]any)
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	meals := body["meals"].(map[string]any)
	if len(meals["snack"].([]any)) != 2 {
		t.Errorf("expected 2 snacks, got %v", meals["snack"])
	}
}

func TestLogTodayPost(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	resp, body := post(t, ts.URL+"/api/log/today", `{"name":"Banana","calories":89,"protein":1.1,"carbs":23,"fat":0.3,"time":"10:15"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", resp.StatusCode, body)
	}
	entry := body["entry"].(map[string]any)
	if entry["id"] == "" || entry["time"] != "10:15" {
		t.Errorf("unexpected entry: %v", entry)
	}

	_, body = get(t, ts.URL+"/api/log/today")
	if n := len(body["items"].([]any)); n != 6 {
		t.Errorf("expected 6 items after post, got %d", n)
	}
}

func TestLogTodayPost_Validation(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	tests := []struct {
		name string
		body string
	}{
		{"negative calories", `{"name":"x","calories":-5}`},
		{"missing name", `{"calories":10}`},
		{"bad time", `{"name":"x","time":"noon"}`},
		{"unknown field", `{"name":"x","sugar":3}`},
		{"not json", `nope`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := post(t, ts.URL+"/api/log/today", tc.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestLogAddFood(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	resp, body := post(t, ts.URL+"/api/log/add-food", `{"foodId":"15","servings":2}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", resp.StatusCode, body)
	}
	entry := body["entry"].(map[string]any)
	if entry["name"] != "Chicken Thigh" || entry["calories"] != 418.0 {
		t.Errorf("unexpected entry: %v", entry)
	}

	resp, _ = post(t, ts.URL+"/api/log/add-food", `{"foodId":"5"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected default servings to succeed, got %d", resp.StatusCode)
	}

	resp, _ = post(t, ts.URL+"/api/log/add-food", `{"foodId":"999"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	resp, _ = post(t, ts.URL+"/api/log/add-food", `{"foodId":"5","servings":0}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLogRecentAndUndo(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	_, body := get(t, ts.URL+"/api/log/recent?limit=1")
	items := body["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %v", items)
	}
	newest := items[0].(map[string]any)["id"]

	resp, body := post(t, ts.URL+"/api/log/undo-last", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["undone"] != true || body["id"] != newest {
		t.Errorf("unexpected undo response: %v", body)
	}

	_, body = get(t, ts.URL+"/api/log/today")
	if n := len(body["items"].([]any)); n != 4 {
		t.Errorf("expected 4 items after undo, got %d", n)
	}
}

func TestStatsToday(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	resp, body := get(t, ts.URL+"/api/stats/today")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	stats := body["stats"].(map[string]any)
	if stats["caloriesEaten"] != 1700.0 || stats["caloriesLeft"] != 500.0 || stats["caloriesGoal"] != 2200.0 {
		t.Errorf("unexpected stats: %v", stats)
	}
	if rings := body["rings"].([]any); len(rings) != 4 {
		t.Errorf("expected 4 rings, got %v", rings)
	}
}

func TestStatsToday_GoalOverride(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	_, body := get(t, ts.URL+"/api/stats/today?caloriesGoal=1500&fatGoal=40")
	stats := body["stats"].(map[string]any)
	if stats["caloriesLeft"] != -200.0 {
		t.Errorf("expected caloriesLeft=-200, got %v", stats["caloriesLeft"])
	}
	if stats["fatGoal"] != 40.0 || stats["proteinGoal"] != 150.0 {
		t.Errorf("unexpected goals: %v", stats)
	}

	resp, _ := get(t, ts.URL+"/api/stats/today?caloriesGoal=lots")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	resp, _ = get(t, ts.URL+"/api/stats/today?proteinGoal=-1")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative goal, got %d", resp.StatusCode)
	}
	resp, _ = get(t, ts.URL+"/api/stats/today?unit=cal")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad unit, got %d", resp.StatusCode)
	}
}

func TestStatsToday_KJ(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	_, body := get(t, ts.URL+"/api/stats/today?unit=kJ")
	stats := body["stats"].(map[string]any)
	eaten := stats["caloriesEaten"].(float64)
	if eaten < 7112 || eaten > 7113 {
		t.Errorf("expected ~7112.8 kJ, got %v", eaten)
	}
}

func TestChartsDaily(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	resp, body := get(t, ts.URL+"/api/charts/daily?days=7")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	items := body["items"].([]any)
	if len(items) != 7 {
		t.Fatalf("expected 7 points, got %d", len(items))
	}
	last := items[6].(map[string]any)
	if last["energy"] != 1700.0 {
		t.Errorf("expected today's energy 1700, got %v", last["energy"])
	}

	resp, _ = get(t, ts.URL+"/api/charts/daily?unit=stone")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLatency(t *testing.T) {
	ts := newTestServer(t, nil, 50*time.Millisecond)

	start := time.Now()
	resp, _ := get(t, ts.URL+"/api/foods/search?q=rice")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected at least 50ms latency, got %v", elapsed)
	}

	// Health checks are never delayed; only assert it answers.
	resp, _ = get(t, ts.URL+"/api/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestSPAFallback(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	resp, err := http.Get(ts.URL + "/some/client/route")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestLogToday_MealsOrderedByTime(t *testing.T) {
	ts := newTestServer(t, nil, 0)

	resp, body := post(t, ts.URL+"/api/log/today", `{"name":"Coffee","calories":5,"time":"06:00"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", resp.StatusCode, body)
	}
	resp, _ = post(t, ts.URL+"/api/log/today", `{"name":"Coffee","calories":5,"time":"+6:00"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for signed time, got %d", resp.StatusCode)
	}

	_, body = get(t, ts.URL+"/api/log/today")
	if n := len(body["items"].([]any)); n != 6 {
		t.Fatalf("expected 6 items, got %d", n)
	}
	breakfast := body["meals"].(map[string]any)["breakfast"].([]any)
	if len(breakfast) != 2 {
		t.Fatalf("expected 2 breakfast entries, got %d", len(breakfast))
	}
	if first := breakfast[0].(map[string]any); first["time"] != "06:00" {
		t.Errorf("expected 06:00 first, got %v", first["time"])
	}
}
