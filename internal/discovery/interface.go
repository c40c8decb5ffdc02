package discovery

import (
	"context"

	"tenantfinder/pkg/domain"
	"tenantfinder/pkg/probe"
)

//go:generate mockgen -package mockdiscovery -source=interface.go -destination=mock/mockdiscovery.go *

// Prober performs a single network probe. *probe.Client implements it.
type Prober interface {
	Probe(ctx context.Context, URL string) (probe.Result, error)
}

// Discoverer is the engine surface used by the worker and the HTTP API.
// A timeout set on ctx with probe.WithTimeout bounds each probe of the call.
type Discoverer interface {
	LocateProduction(ctx context.Context, tenantID string) (*domain.ProductionMatch, error)
	Discover(ctx context.Context, tenantID string, maxIndex int) (*domain.TenantDiscoveryResult, error)
}
