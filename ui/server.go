package ui

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"paygap/domain/compensation"
	"paygap/internal/loader"
	"paygap/internal/testkit"
)

// Server exposes the dashboard computations as a JSON API.
type Server struct {
	router *gin.Engine
	cache  *loader.Cache
	kit    *testkit.TestKit
	config Config

	started time.Time
}

// NewServer creates the API server. An empty SourceFile switches to
// generated demo data, same as the dashboard app.
func NewServer(config Config) *Server {
	if config.TopN <= 0 {
		config.TopN = 20
	}
	if config.DetailN <= 0 {
		config.DetailN = 10
	}
	if config.HistogramBins <= 0 {
		config.HistogramBins = 20
	}

	s := &Server{
		router:  gin.Default(),
		config:  config,
		started: time.Now(),
	}
	if config.SourceFile != "" {
		s.cache = loader.NewCache()
	} else {
		log.Printf("[Server] No source file configured, serving generated demo data")
		s.kit = testkit.NewTestKit()
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/summary", s.handleSummary)
	api.GET("/records", s.handleRecords)
	api.GET("/top", s.handleTop)
	api.GET("/industries", s.handleIndustries)
	api.GET("/histogram", s.handleHistogram)
	api.GET("/correlation", s.handleCorrelation)
	api.GET("/savings", s.handleSavings)
	api.GET("/levels", s.handleLevels)
	api.GET("/report", s.handleReport)
	api.GET("/digest", s.handleDigest)
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	log.Printf("Starting API server on %s", addr)
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() *gin.Engine {
	return s.router
}

// snapshot returns the canonical table plus load metadata. In demo mode
// the metadata is synthesized.
func (s *Server) snapshot() (compensation.Table, *loader.Snapshot, error) {
	if s.cache != nil {
		snap, err := s.cache.Get(s.config.SourceFile)
		if err != nil {
			return nil, nil, err
		}
		return snap.Table, snap, nil
	}
	return s.kit.Table(), nil, nil
}
