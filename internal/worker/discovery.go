package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"tenantfinder/internal/discovery"
	"tenantfinder/internal/finder"
	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/logger"
	"tenantfinder/pkg/serrors"
	"tenantfinder/pkg/storage"
)

// DiscoveryWorker is a River worker that runs a discovery for a (tenant,
// max index) key and completes every pending discovery stored for that key.
//
// A job whose discoveries were all deleted is cancelled without probing.
// Caller misuse (bad tenant identifier or range) fails the pending
// discoveries immediately and cancels the job; any other error is recorded
// and returned so that River retries the job. Discoveries are marked failed
// once maxAttempts attempts have failed.
type DiscoveryWorker struct {
	river.WorkerDefaults[finder.JobArgs]

	discoverer  discovery.Discoverer
	storage     storage.DiscoveryStorage
	maxAttempts int
}

// NewDiscoveryWorker constructs a DiscoveryWorker.
func NewDiscoveryWorker(discoverer discovery.Discoverer, strg storage.DiscoveryStorage, maxAttempts int) *DiscoveryWorker {
	return &DiscoveryWorker{
		discoverer:  discoverer,
		storage:     strg,
		maxAttempts: maxAttempts,
	}
}

// Work executes a single discovery job.
func (w *DiscoveryWorker) Work(ctx context.Context, job *river.Job[finder.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("tenantID", job.Args.TenantID),
		zap.Int("maxIndex", job.Args.MaxIndex))

	pending, err := w.storage.PendingDiscoveryCount(ctx, job.Args.TenantID, job.Args.MaxIndex)
	if err != nil {
		return fmt.Errorf("could not count pending discoveries: %w", err)
	}
	if pending == 0 {
		logger.Info(ctx, "no pending discoveries, cancelling job")

		return river.JobCancel(serrors.With(serrors.ErrConflict, "no pending discoveries")) //nolint: wrapcheck
	}

	result, err := w.discoverer.Discover(ctx, job.Args.TenantID, job.Args.MaxIndex)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, serrors.ErrBadRequest) {
			if uerr := w.storage.UpdatePendingDiscoveries(ctx, job.Args.TenantID, job.Args.MaxIndex,
				storage.DiscoveryUpdates{
					Status:    domain.DiscoveryStatusFailed,
					LastError: &msg,
				}); uerr != nil {
				logger.Error(ctx, "could not mark discoveries failed", zap.Error(uerr))
			}

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in discovering tenant", zap.Error(err))
		if uerr := w.storage.UpdatePendingDiscoveries(ctx, job.Args.TenantID, job.Args.MaxIndex,
			storage.DiscoveryUpdates{
				Status:      domain.DiscoveryStatusFailed,
				LastError:   &msg,
				MaxAttempts: w.maxAttempts,
			}); uerr != nil {
			logger.Error(ctx, "could not record discovery error", zap.Error(uerr))
		}

		return fmt.Errorf("could not discover tenant: %w", err)
	}

	empty := ""
	if err := w.storage.UpdatePendingDiscoveries(ctx, job.Args.TenantID, job.Args.MaxIndex,
		storage.DiscoveryUpdates{
			Status:    domain.DiscoveryStatusCompleted,
			Result:    result,
			LastError: &empty,
		}); err != nil {
		return fmt.Errorf("could not store discovery result: %w", err)
	}

	logger.Info(ctx, "tenant discovered",
		zap.Bool("found", result.Found()),
		zap.String("dataCenter", result.DataCenter),
		zap.Int("implementationTenants", len(result.ImplementationTenants)))

	return nil
}
