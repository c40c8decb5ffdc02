package finder

import (
	"context"

	"tenantfinder/pkg/domain"
)

//go:generate mockgen -package mockfinder -source=interface.go -destination=mock/mockfinder.go *
type Finder interface {
	Enqueue(ctx context.Context, tenantID string, maxIndex int) (*domain.Discovery, error)
	Discoveries(ctx context.Context,
		tenantID string,
		status domain.DiscoveryStatus,
		cursor string,
		limit uint) ([]domain.Discovery, string, error)
	Result(ctx context.Context, discoveryID domain.DiscoveryID) (*domain.Discovery, error)
	Delete(ctx context.Context, discoveryID domain.DiscoveryID) error
}
