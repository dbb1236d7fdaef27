package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/utafrali/CampgroundsGo/pkg/database"
	"github.com/utafrali/CampgroundsGo/pkg/logger"

	"github.com/utafrali/CampgroundsGo/internal/config"
	"github.com/utafrali/CampgroundsGo/internal/seed"
)

func main() {
	count := flag.Int("count", 50, "number of campgrounds to generate")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New("campgrounds-seed", cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, database.MongoConfig{
		URI:                cfg.MongoURI,
		Database:           cfg.MongoDatabase,
		ConnectTimeout:     cfg.MongoTimeout,
		SlowQueryThreshold: cfg.SlowQueryThreshold,
		AppName:            "campgrounds-seed",
	}, log)
	if err != nil {
		log.Error("failed to connect to mongo", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("mongo disconnect error", slog.String("error", err.Error()))
		}
	}()

	if err := seed.Run(ctx, client.Database(cfg.MongoDatabase), *count, log); err != nil {
		log.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
