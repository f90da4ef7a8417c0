package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"paygap/domain/compensation"
	"paygap/internal/loader"
	"paygap/internal/testkit"
)

//go:embed templates/* static/* methodology.md
var embeddedFiles embed.FS

// App represents the dashboard application
type App struct {
	router    *chi.Mux
	cache     *loader.Cache
	kit       *testkit.TestKit
	templates *template.Template
	config    Config
}

// Config holds dashboard application configuration
type Config struct {
	Port          string
	SourceFile    string // empty means demo mode with generated data
	TopN          int
	DetailN       int
	HistogramBins int
}

// NewApp creates a new dashboard application
func NewApp(config Config) (*App, error) {
	if config.TopN <= 0 {
		config.TopN = 20
	}
	if config.DetailN <= 0 {
		config.DetailN = 10
	}
	if config.HistogramBins <= 0 {
		config.HistogramBins = 20
	}

	funcMap := template.FuncMap{
		"money": money,
		"ratio": ratio,
		"add":   func(a, b int) int { return a + b },
		"pct":   func(f float64) float64 { return f * 100 },
		"checked": func(list []string, v string) bool {
			for _, s := range list {
				if s == v {
					return true
				}
			}
			return false
		},
		"kfmt": func(v float64) string {
			if v >= 1000 {
				return fmt.Sprintf("%.0fk", v/1000)
			}
			return fmt.Sprintf("%.0f", v)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		templates: templates,
		config:    config,
	}
	if config.SourceFile != "" {
		app.cache = loader.NewCache()
	} else {
		log.Printf("[App] No source file configured, serving generated demo data")
		app.kit = testkit.NewTestKit()
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", http.StripPrefix("/", staticFS))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleSummary)
	a.router.Get("/inequality", a.handleInequality)
	a.router.Get("/industries", a.handleIndustries)
	a.router.Get("/performance", a.handlePerformance)
	a.router.Get("/methodology", a.handleMethodology)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.config.Port
	log.Printf("Starting dashboard server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the handler for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// dataset returns the canonical table and its load report, loading through
// the memoized cache or falling back to generated demo data (nil report).
func (a *App) dataset() (compensation.Table, *loader.Report, error) {
	if a.cache != nil {
		snap, err := a.cache.Get(a.config.SourceFile)
		if err != nil {
			return nil, nil, err
		}
		return snap.Table, snap.Report, nil
	}
	return a.kit.Table(), nil, nil
}

// loadNote summarizes data quality for the page footer.
func loadNote(report *loader.Report) string {
	if report == nil {
		return "Demo mode: generated synthetic dataset."
	}
	if report.RowsDropped == 0 && report.TotalCellFailures() == 0 {
		return fmt.Sprintf("Loaded %d rows from %s with no data loss.", report.RowsKept, report.SourceFile)
	}
	return fmt.Sprintf("Loaded %d of %d rows from %s: %d dropped for missing name or salary, %d unparseable cells treated as missing.",
		report.RowsKept, report.RowsRead, report.SourceFile, report.RowsDropped, report.TotalCellFailures())
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	full, report, err := a.dataset()
	if err != nil {
		a.renderLoadFailure(w, err)
		return
	}
	view := buildSummaryView(full, selectionFromQuery(r.URL.Query()), a.config.TopN)
	view.LoadNote = loadNote(report)
	a.renderTemplate(w, "summary.html", view)
}

func (a *App) handleInequality(w http.ResponseWriter, r *http.Request) {
	full, report, err := a.dataset()
	if err != nil {
		a.renderLoadFailure(w, err)
		return
	}
	view := buildInequalityView(full, selectionFromQuery(r.URL.Query()), a.config.HistogramBins)
	view.LoadNote = loadNote(report)
	a.renderTemplate(w, "inequality.html", view)
}

func (a *App) handleIndustries(w http.ResponseWriter, r *http.Request) {
	full, report, err := a.dataset()
	if err != nil {
		a.renderLoadFailure(w, err)
		return
	}
	view := buildIndustryView(full, selectionFromQuery(r.URL.Query()), a.config.DetailN)
	view.LoadNote = loadNote(report)
	a.renderTemplate(w, "industries.html", view)
}

func (a *App) handlePerformance(w http.ResponseWriter, r *http.Request) {
	full, report, err := a.dataset()
	if err != nil {
		a.renderLoadFailure(w, err)
		return
	}
	view := buildPerformanceView(full, selectionFromQuery(r.URL.Query()))
	view.LoadNote = loadNote(report)
	a.renderTemplate(w, "performance.html", view)
}

func (a *App) handleMethodology(w http.ResponseWriter, r *http.Request) {
	src, err := embeddedFiles.ReadFile("methodology.md")
	if err != nil {
		log.Printf("[Methodology] Missing embedded document: %v", err)
		http.Error(w, "Methodology unavailable", http.StatusInternalServerError)
		return
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	body := markdown.Render(p.Parse(src), renderer)

	a.renderTemplate(w, "methodology.html", map[string]interface{}{
		"Title":  "Methodology",
		"Active": "methodology",
		"Body":   template.HTML(body),
	})
}

// renderLoadFailure reports a file-level load failure. Nothing is served
// from a partially read source.
func (a *App) renderLoadFailure(w http.ResponseWriter, err error) {
	log.Printf("[App] Dataset load failed: %v", err)
	http.Error(w, fmt.Sprintf("Dataset unavailable: %v", err), http.StatusServiceUnavailable)
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
