package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"paygap/internal/testkit"
)

func demoApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(Config{Port: "0"})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Every dashboard tab renders in demo mode.
func TestDashboardPagesRender(t *testing.T) {
	app := demoApp(t)
	for _, path := range []string{"/", "/inequality", "/industries", "/performance", "/methodology"} {
		rec := get(t, app.Router(), path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status %d, body %s", path, rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "CEO Compensation Dashboard") {
			t.Errorf("%s: missing page chrome", path)
		}
	}
}

// An impossible filter combination renders the empty state, not an error.
func TestDashboardEmptyFilterResult(t *testing.T) {
	app := demoApp(t)
	rec := get(t, app.Router(), "/?industry=No+Such+Industry")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No executives match") {
		t.Errorf("expected empty-state message, got %q", rec.Body.String()[:200])
	}
}

// The industry spotlight appears when a detail industry is requested.
func TestDashboardIndustryDetail(t *testing.T) {
	app := demoApp(t)
	rec := get(t, app.Router(), "/industries?detail=Technology")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Spotlight: Technology") {
		t.Error("missing industry spotlight section")
	}
}

// A missing source file fails loudly instead of rendering stale data.
func TestDashboardLoadFailure(t *testing.T) {
	app, err := NewApp(Config{
		Port:       "0",
		SourceFile: filepath.Join(t.TempDir(), "gone.csv"),
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	rec := get(t, app.Router(), "/")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status %d, want 503", rec.Code)
	}
}

func demoServer() *Server {
	gin.SetMode(gin.TestMode)
	return NewServer(Config{})
}

// Every JSON endpoint answers in demo mode.
func TestAPIEndpointsRespond(t *testing.T) {
	s := demoServer()
	for _, path := range []string{
		"/api/health", "/api/summary", "/api/records", "/api/top",
		"/api/industries", "/api/histogram", "/api/correlation",
		"/api/savings", "/api/levels", "/api/report",
	} {
		rec := get(t, s.Handler(), path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status %d, body %s", path, rec.Code, rec.Body.String())
			continue
		}
		var payload map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Errorf("%s: invalid JSON: %v", path, err)
		}
	}
}

// Filters narrow /api/records and full selections round-trip to everything.
func TestAPIRecordsFiltering(t *testing.T) {
	s := demoServer()

	all := get(t, s.Handler(), "/api/records")
	var allResp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(all.Body.Bytes(), &allResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if allResp.Count == 0 {
		t.Fatal("demo dataset is empty")
	}

	narrowed := get(t, s.Handler(), "/api/records?industry=Technology")
	var narrowedResp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(narrowed.Body.Bytes(), &narrowedResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if narrowedResp.Count == 0 || narrowedResp.Count >= allResp.Count {
		t.Errorf("narrowed count %d not inside (0, %d)", narrowedResp.Count, allResp.Count)
	}

	full := "/api/records?level=Minimal&level=Low&level=Medium&level=High&level=Extreme"
	roundTrip := get(t, s.Handler(), full)
	var rtResp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(roundTrip.Body.Bytes(), &rtResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rtResp.Count != allResp.Count {
		t.Errorf("full level selection returned %d rows, want %d", rtResp.Count, allResp.Count)
	}
}

// /api/top honors an explicit n and rejects garbage.
func TestAPITopParameter(t *testing.T) {
	s := demoServer()

	rec := get(t, s.Handler(), "/api/top?n=5")
	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 5 {
		t.Errorf("got %d rows, want 5", resp.Count)
	}

	bad := get(t, s.Handler(), "/api/top?n=minus-three")
	if bad.Code != http.StatusBadRequest {
		t.Errorf("garbage n: status %d, want 400", bad.Code)
	}
}

// /api/digest emits the markdown digest.
func TestAPIDigest(t *testing.T) {
	s := demoServer()
	rec := get(t, s.Handler(), "/api/digest")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"# CEO Compensation Report", "## Summary", "## Equal-Pay Scenario"} {
		if !strings.Contains(body, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

// The API against a real file serves the loaded rows and reports health.
func TestAPIFileMode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	path := filepath.Join(t.TempDir(), "data.csv")
	kit := testkit.NewTestKitWithConfig(testkit.GeneratorConfig{RecordCount: 25, Seed: 3})
	if err := kit.WriteCSV(path); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	s := NewServer(Config{SourceFile: path})
	rec := get(t, s.Handler(), "/api/records")
	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 25 {
		t.Errorf("got %d rows, want 25", resp.Count)
	}

	health := get(t, s.Handler(), "/api/health")
	if !strings.Contains(health.Body.String(), `"mode":"file"`) {
		t.Errorf("health missing file mode: %s", health.Body.String())
	}

	report := get(t, s.Handler(), "/api/report")
	var repResp struct {
		Report struct {
			RowsKept int `json:"rows_kept"`
		} `json:"report"`
	}
	if err := json.Unmarshal(report.Body.Bytes(), &repResp); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if repResp.Report.RowsKept != 25 {
		t.Errorf("report rows_kept %d, want 25", repResp.Report.RowsKept)
	}
}
