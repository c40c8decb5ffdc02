// Package finder stores discovery requests and hands them to background jobs.
// Identical requests (same tenant and index range) share a single job; a
// request arriving while a completed result is still fresh reuses it.
package finder

import (
	"context"
	"fmt"
	"time"

	"tenantfinder/internal/config"
	"tenantfinder/internal/discovery"
	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/serrors"
	"tenantfinder/pkg/storage"
)

// Options configure how discovery jobs are enqueued and how results are cached.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a discovery job before marking it failed.
	MaxAttempts int
	// ResultCacheTTL is the duration during which a completed result is reused
	// for new requests with the same key instead of enqueueing a duplicate job.
	ResultCacheTTL time.Duration
	// DefaultMaxIndex is used when a request does not name an index range.
	DefaultMaxIndex int
	// MaxIndexLimit is the highest index range a request may ask for.
	MaxIndexLimit int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:     cfg.Worker.MaxAttempts,
		ResultCacheTTL:  cfg.Worker.ResultCacheTTL,
		DefaultMaxIndex: cfg.Discovery.MaxIndex,
		MaxIndexLimit:   cfg.Discovery.MaxIndexLimit,
	}
}

type finder struct {
	options Options
	storage storage.Storage
}

// New creates a Finder backed by the provided storage.
func New(storage storage.Storage, options Options) Finder {
	if options.DefaultMaxIndex <= 0 {
		options.DefaultMaxIndex = discovery.DefaultMaxIndex
	}
	if options.MaxIndexLimit <= 0 {
		options.MaxIndexLimit = discovery.DefaultMaxIndexLimit
	}

	return &finder{
		options: options,
		storage: storage,
	}
}

// Enqueue stores a pending discovery and enqueues the job that will process
// it. When River reports the job as a duplicate and a completed discovery of
// the same key exists, the new discovery is completed right away with that result.
func (f *finder) Enqueue(ctx context.Context, tenantID string, maxIndex int) (*domain.Discovery, error) {
	if err := discovery.ValidateTenantID(tenantID); err != nil {
		return nil, err
	}
	if maxIndex == 0 {
		maxIndex = f.options.DefaultMaxIndex
	}
	if maxIndex < 0 || maxIndex > f.options.MaxIndexLimit {
		return nil, serrors.With(serrors.ErrBadRequest, "max index must be between 1 and %d", f.options.MaxIndexLimit)
	}

	var d *domain.Discovery
	if err := f.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreDiscoveries(ctx, domain.Discovery{
			TenantID: tenantID,
			MaxIndex: maxIndex,
			Status:   domain.DiscoveryStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store discovery: %w", err)
		}
		d = &res[0]

		jobAdded, err := tx.AddJob(ctx, NewJobArgs(tenantID, maxIndex, f.options), nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}
		if jobAdded {
			return nil
		}

		// a job for this key already exists; reuse its result if it finished
		last, err := tx.LastCompletedDiscovery(ctx, tenantID, maxIndex)
		if err != nil {
			return fmt.Errorf("could not get last completed discovery: %w", err)
		}
		if last == nil {
			// still queued or running, it completes every pending discovery of the key
			return nil
		}

		updated, err := tx.UpdateDiscoveryByID(ctx, d.ID, storage.DiscoveryUpdates{
			Status: domain.DiscoveryStatusCompleted,
			Result: &last.Result,
		})
		if err != nil {
			return fmt.Errorf("could not update discovery: %w", err)
		}
		if updated != nil {
			d = updated
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue discovery: %w", err)
	}

	return d, nil
}

// Discoveries returns a page of discoveries, newest first, optionally filtered
// by tenant and status. Cursors are RFC3339 timestamps with nanoseconds.
func (f *finder) Discoveries(ctx context.Context,
	tenantID string,
	status domain.DiscoveryStatus,
	cursor string,
	limit uint) ([]domain.Discovery, string, error) {
	switch status {
	case "", domain.DiscoveryStatusPending, domain.DiscoveryStatusCompleted, domain.DiscoveryStatusFailed:
	default:
		return nil, "", serrors.With(serrors.ErrBadRequest, "unknown status %q", status)
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := f.storage.Discoveries(ctx, storage.DiscoveryFilter{
		TenantID: tenantID,
		Status:   status,
		Cursor:   cursorTime,
		Limit:    limit,
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not get discoveries: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Discoveries, next, nil
}

// Result fetches a single discovery by ID.
func (f *finder) Result(ctx context.Context, discoveryID domain.DiscoveryID) (*domain.Discovery, error) {
	res, err := f.storage.DiscoveryByID(ctx, discoveryID)
	if err != nil {
		return nil, fmt.Errorf("could not get discovery: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "discovery not found")
	}

	return res, nil
}

// Delete soft deletes a discovery. The job serving it is left alone because
// other pending discoveries of the same key may depend on it; the worker skips
// keys without pending discoveries.
func (f *finder) Delete(ctx context.Context, discoveryID domain.DiscoveryID) error {
	res, err := f.storage.DeleteDiscovery(ctx, discoveryID)
	if err != nil {
		return fmt.Errorf("could not delete discovery: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "discovery not found")
	}

	return nil
}
