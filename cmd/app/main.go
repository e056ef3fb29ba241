package main

import (
	"flag"
	"log"
	"os"

	"EquityLens/internal/di"
	"EquityLens/pkg/config"

	"github.com/joho/godotenv"
)

func main() {
	// Local .env is optional; real deployments inject env vars directly.
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s market=%s news_enabled=%t",
		cfg.Environment, cfg.Market.BaseURL, cfg.News.APIKey != "")

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
