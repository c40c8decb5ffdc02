// Package worker runs discovery jobs enqueued by the finder on River.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"tenantfinder/internal/config"
	"tenantfinder/internal/discovery"
	"tenantfinder/pkg/logger"
	"tenantfinder/pkg/storage"
)

// Options configure the River client running discovery jobs.
type Options struct {
	// MaxWorkers is the number of discovery jobs processed concurrently.
	MaxWorkers int
	// MaxAttempts is the number of failed attempts after which pending
	// discoveries are marked failed.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:  cfg.Worker.MaxWorkers,
		MaxAttempts: cfg.Worker.MaxAttempts,
	}
}

// Start registers the discovery worker and starts a River client consuming the
// default queue.
func Start(
	ctx context.Context,
	dbPool *pgxpool.Pool,
	discoverer discovery.Discoverer,
	strg storage.DiscoveryStorage,
	options Options,
) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewDiscoveryWorker(discoverer, strg, options.MaxAttempts))

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
