package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"momentum/internal/config"
	"momentum/internal/infrastructure"
	"momentum/internal/schedule"
)

func main() {
	date := flag.String("date", "", "reference date as YYYY-MM-DD (defaults to today)")
	pattern := flag.String("pattern", "", "pattern string, e.g. \"0/1/1\" or \"-1L\"")
	kind := flag.Int("kind", 1, "pattern kind: 1 = ordinal weekday, 2 = month edge")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: targetdate -pattern <pattern> [-kind 1|2] [-date YYYY-MM-DD]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{Logging: config.LoggingConfig{Level: "warn", Format: "text", Output: "console"}}
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	reference := time.Now().UTC()
	if *date != "" {
		reference, err = time.Parse("2006-01-02", *date)
		if err != nil {
			logger.Error("Invalid reference date", slog.String("date", *date), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	target, err := schedule.TargetDate(reference, *pattern, schedule.Kind(*kind))
	if err != nil {
		logger.Error("Failed to resolve pattern",
			slog.String("pattern", *pattern),
			slog.Int("kind", *kind),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Pattern resolved",
		slog.String("pattern", *pattern),
		slog.Int("kind", *kind),
		slog.String("reference", reference.Format("2006-01-02")),
		slog.String("target_date", target.Format("2006-01-02")))

	fmt.Printf("%s (%s)\n", target.Format("2006-01-02"), target.Weekday())
}
