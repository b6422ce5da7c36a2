package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Manish0124/portfolio/internal/config"
	"github.com/Manish0124/portfolio/internal/database"
	"github.com/Manish0124/portfolio/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	logger.Init()
	cfg := config.Load()

	timeout := flag.Duration("timeout", time.Minute, "overall migration timeout")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: migrate [-timeout 1m] up|down|status\n")
	}
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to open database", err)
	}
	defer db.Close()

	provider, err := database.NewMigrator(db)
	if err != nil {
		logger.Fatal(err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		logResults(results)
		if err != nil {
			logger.Fatal("Migration failed: ", err)
		}
	case "down":
		result, err := provider.Down(ctx)
		if result != nil {
			logResults([]*goose.MigrationResult{result})
		}
		if err != nil {
			logger.Fatal("Rollback failed: ", err)
		}
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			logger.Fatal("Status failed: ", err)
		}
		for _, s := range statuses {
			logger.WithFields(logrus.Fields{
				"version": s.Source.Version,
				"file":    s.Source.Path,
				"state":   s.State,
			}).Info("migration")
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func logResults(results []*goose.MigrationResult) {
	for _, r := range results {
		logger.WithFields(logrus.Fields{
			"version":   r.Source.Version,
			"direction": r.Direction,
			"duration":  r.Duration,
		}).Info("applied")
	}
}
