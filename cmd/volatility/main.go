package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"momentum/internal/analytics"
	"momentum/internal/config"
	"momentum/internal/infrastructure"
)

func main() {
	column := flag.String("column", "", "close-price column name (defaults to configured column)")
	lookback := flag.Int("lookback", 0, "rolling window in trading days (defaults to configured lookback)")
	renames := flag.String("rename", "", "column renames as old=new pairs, comma separated")
	out := flag.String("out", "", "output csv path (defaults to volatility.csv in the reports directory)")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: volatility [flags] <price-file> [<price-file>...]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if err := cfg.Paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create required directories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *column == "" {
		*column = cfg.Analytics.CloseColumn
	}
	if *lookback == 0 {
		*lookback = cfg.Analytics.Lookback
	}
	if *out == "" {
		*out = cfg.Paths.ReportPath("volatility.csv")
	}

	rename, err := parseRenames(*renames)
	if err != nil {
		logger.Error("Invalid rename flag", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Starting volatility computation",
		slog.Int("files", len(files)),
		slog.String("column", *column),
		slog.Int("lookback", *lookback),
		slog.String("output", *out))

	reports, err := analytics.ComputeBatch(context.Background(), files, rename, *column, *lookback)
	if err != nil {
		logger.Error("Volatility computation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := writeReportCSV(*out, reports); err != nil {
		logger.Error("Failed to write report", slog.String("path", *out), slog.String("error", err.Error()))
		os.Exit(1)
	}

	rows := 0
	for _, report := range reports {
		rows += len(report.Series.Values)
	}
	logger.Info("Volatility report written",
		slog.String("path", *out),
		slog.Int("files", len(reports)),
		slog.Int("rows", rows))
	fmt.Printf("Wrote %d rows from %d files to %s\n", rows, len(reports), *out)
}

// parseRenames parses "old=new,old2=new2" into a rename map
func parseRenames(s string) (map[string]string, error) {
	if s == "" {
		return nil, nil
	}

	rename := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("rename pair %q must be old=new", pair)
		}
		rename[parts[0]] = parts[1]
	}
	return rename, nil
}

// writeReportCSV writes all volatility series to a single csv file
func writeReportCSV(path string, reports []analytics.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write([]string{"Source", "Date", "Volatility"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, report := range reports {
		source := filepath.Base(report.Source)
		for i, v := range report.Series.Values {
			record := []string{
				source,
				report.Series.Dates[i].Format("2006-01-02"),
				strconv.FormatFloat(v, 'f', 6, 64),
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("write record: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
