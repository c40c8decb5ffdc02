package storage

import (
	"context"
	"time"

	"tenantfinder/pkg/domain"
)

// DiscoveryUpdates describes the fields applied to stored discoveries during an
// update. Status is always set; the other fields only when non-nil.
type DiscoveryUpdates struct {
	// Status is the new status to set for the discovery.
	Status domain.DiscoveryStatus
	// Result, when provided, replaces the stored discovery result payload.
	Result *domain.TenantDiscoveryResult
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed if the current attempts after increment would
	// exceed this threshold. A value <= 0 disables this guard.
	MaxAttempts int
}

// DiscoveryPage groups a page of discoveries together with an optional
// NextCursor used for pagination.
type DiscoveryPage struct {
	// Discoveries contains the current page of discovery records.
	Discoveries []domain.Discovery
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// DiscoveryFilter narrows a discovery listing. Zero values disable a filter.
type DiscoveryFilter struct {
	TenantID string
	Status   domain.DiscoveryStatus
	// Cursor restricts the page to discoveries created strictly before it.
	Cursor time.Time
	Limit  uint
}

// DiscoveryStorage defines CRUD and query operations related to discoveries.
// Discoveries are keyed for processing by (tenant id, max index): every pending
// discovery with the same key is served by the same background job.
type DiscoveryStorage interface {
	// StoreDiscoveries inserts one or more discoveries and returns the stored
	// rows as they exist in the database (including generated fields).
	StoreDiscoveries(ctx context.Context, discoveries ...domain.Discovery) ([]domain.Discovery, error)
	// UpdatePendingDiscoveries updates all pending discoveries for the given key.
	// Notes:
	// - Attempts is incremented by 1 and updated_at is set automatically.
	// - If Status is Failed and MaxAttempts > 0, status is only set to Failed
	//   when the attempts after increment would reach MaxAttempts; otherwise
	//   status remains Pending.
	UpdatePendingDiscoveries(ctx context.Context, tenantID string, maxIndex int, updates DiscoveryUpdates) error
	// PendingDiscoveryCount returns the number of pending, not deleted
	// discoveries for the given key.
	PendingDiscoveryCount(ctx context.Context, tenantID string, maxIndex int) (int64, error)
	// UpdateDiscoveryByID updates a single discovery and returns the updated row,
	// or nil when it does not exist or was deleted.
	UpdateDiscoveryByID(ctx context.Context, ID domain.DiscoveryID, updates DiscoveryUpdates) (*domain.Discovery, error)
	// DeleteDiscovery soft deletes a discovery and returns it, or nil if it was not found.
	DeleteDiscovery(ctx context.Context, ID domain.DiscoveryID) (*domain.Discovery, error)
	// Discoveries returns a page of discoveries ordered from newest to oldest.
	Discoveries(ctx context.Context, filter DiscoveryFilter) (DiscoveryPage, error)
	// DiscoveryByID fetches a discovery by its ID, excluding soft-deleted
	// records. Returns nil when not found.
	DiscoveryByID(ctx context.Context, ID domain.DiscoveryID) (*domain.Discovery, error)
	// LastCompletedDiscovery returns the most recent completed discovery for the
	// given key, or nil when none exists.
	LastCompletedDiscovery(ctx context.Context, tenantID string, maxIndex int) (*domain.Discovery, error)
}
