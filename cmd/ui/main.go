package main

import (
	"log"

	"github.com/joho/godotenv"

	"paygap/internal/config"
	"paygap/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	app, err := ui.NewApp(ui.Config{
		Port:          cfg.Server.UIPort,
		SourceFile:    cfg.Data.SourceFile,
		TopN:          cfg.Data.TopN,
		DetailN:       cfg.Data.DetailN,
		HistogramBins: cfg.Data.HistogramBins,
	})
	if err != nil {
		log.Fatal("Failed to create dashboard app:", err)
	}

	log.Printf("Dashboard on http://localhost:%s", cfg.Server.UIPort)
	log.Fatal(app.Start())
}
