package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"paygap/internal/config"
	"paygap/ui"
)

func main() {
	// .env is optional; real deployments set variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	server := ui.NewServer(ui.Config{
		Port:          cfg.Server.Port,
		SourceFile:    cfg.Data.SourceFile,
		TopN:          cfg.Data.TopN,
		DetailN:       cfg.Data.DetailN,
		HistogramBins: cfg.Data.HistogramBins,
	})

	log.Printf("CEO pay API listening on :%s", cfg.Server.Port)
	log.Fatal(server.Start(":" + cfg.Server.Port))
}
