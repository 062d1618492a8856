package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"momentum/internal/dataprocessing"
)

// batchConcurrency caps concurrent file loads; xlsx decoding is the
// expensive part and scales poorly past a handful of workers
const batchConcurrency = 4

// Report holds the volatility series computed from one price file
type Report struct {
	Source string
	Series *Series
}

// ComputeBatch loads every price file and computes its volatility series
// concurrently. The rename map and close column apply to all files. The
// first failure cancels the remaining loads.
func ComputeBatch(ctx context.Context, paths []string, rename map[string]string, column string, lookback int) ([]Report, error) {
	logger := slog.Default()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	reports := make([]Report, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rs, err := dataprocessing.LoadRecords(path, rename)
			if err != nil {
				return fmt.Errorf("load %s: %w", filepath.Base(path), err)
			}

			series, err := VolatilitySeries(rs, column, lookback)
			if err != nil {
				return fmt.Errorf("volatility for %s: %w", filepath.Base(path), err)
			}

			logger.InfoContext(ctx, "computed volatility series",
				"source", filepath.Base(path),
				"rows", len(series.Values),
				"lookback", lookback,
			)

			reports[i] = Report{Source: path, Series: series}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
