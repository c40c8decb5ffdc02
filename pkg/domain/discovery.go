package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProductionMatch identifies the data center that serves a tenant's
// production endpoint.
type ProductionMatch struct {
	DataCenter string `json:"dataCenter"`
	URL        string `json:"url"`
}

// ImplementationTenant is a derived tenant (root identifier + numeric suffix)
// that resolved successfully against the sandbox template.
type ImplementationTenant struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// TenantDiscoveryResult is the outcome of a complete discovery run for a single
// tenant identifier. Empty strings mean the value could not be determined.
// SandboxURL, PreviewURL and CentralURL are only populated when DataCenter is.
type TenantDiscoveryResult struct {
	TenantID              string                 `json:"tenantId"`
	DataCenter            string                 `json:"dataCenter,omitempty"`
	ProductionURL         string                 `json:"productionUrl,omitempty"`
	SandboxURL            string                 `json:"sandboxUrl,omitempty"`
	PreviewURL            string                 `json:"previewUrl,omitempty"`
	CentralURL            string                 `json:"centralUrl,omitempty"`
	ImplementationTenants []ImplementationTenant `json:"implementationTenants"`
}

// Found reports whether a production endpoint was located.
func (r TenantDiscoveryResult) Found() bool {
	return r.DataCenter != ""
}

// DiscoveryID uniquely identifies a stored discovery request.
// It wraps uuid.UUID to provide type safety at the domain layer.
type DiscoveryID uuid.UUID

// String returns the canonical textual form of the ID.
func (id DiscoveryID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the ID in its canonical textual form.
func (id DiscoveryID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText parses an ID from its textual form.
func (id *DiscoveryID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data) //nolint: wrapcheck
}

// DiscoveryStatus represents the lifecycle state of a stored discovery.
type DiscoveryStatus string

const (
	// DiscoveryStatusPending indicates the discovery has been enqueued but not processed yet.
	DiscoveryStatusPending DiscoveryStatus = "PENDING"
	// DiscoveryStatusCompleted indicates the discovery run finished and a result is available.
	// A completed discovery may still report that no production endpoint exists.
	DiscoveryStatusCompleted DiscoveryStatus = "COMPLETED"
	// DiscoveryStatusFailed indicates the run could not be executed; see LastError and Attempts.
	DiscoveryStatusFailed DiscoveryStatus = "FAILED"
)

// Discovery is a persisted, asynchronously processed discovery request and its
// current state.
type Discovery struct {
	// ID is the unique identifier of the discovery.
	ID DiscoveryID `json:"id"`

	// TenantID is the root tenant identifier to discover.
	TenantID string `json:"tenantId"`
	// MaxIndex is the highest implementation tenant index to probe.
	MaxIndex int `json:"maxIndex"`
	// Status is the current lifecycle state.
	Status DiscoveryStatus `json:"status"`
	// Result is set once Status is COMPLETED.
	Result TenantDiscoveryResult `json:"result"`

	// Attempts is the number of times the worker has tried to process this discovery.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent processing error, if any.
	LastError string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the discovery was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
