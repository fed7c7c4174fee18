package main

import (
	"context"
	"flag"
	"log"
	"os"

	"catalogsync_api/config"
	"catalogsync_api/internal/catalog/app"
	"catalogsync_api/pkg/dbconnect/postgres"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config; environment is used when empty")
	flag.Parse()

	// a panic anywhere in the run must still produce exit code 1
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Catalog sync failed: %v", r)
			os.Exit(1)
		}
	}()

	var cfg *config.AppConfig
	var err error
	if *configPath != "" {
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Printf("Failed to load config %s: %v", *configPath, err)
			os.Exit(1)
		}
	} else {
		cfg = config.GetAppConfig()
	}

	connector := postgres.NewPgConnector(cfg.Postgres)
	server := app.NewSyncServer(connector, cfg.Stripe, os.Stdout)
	if err := server.Run(context.Background()); err != nil {
		log.Printf("Catalog sync failed: %v", err)
		os.Exit(1)
	}
}
