package httpapi

import (
	"context"

	"github.com/custodia-labs/bakehouse/internal/core/ports/driving"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Ports contains the services used by the HTTP handlers.
type Ports struct {
	Bakeries   driving.BakeryService
	BakedGoods driving.BakedGoodService

	// Health is optional. When nil, /healthz always reports ok.
	Health HealthChecker
}

// Validate checks that all required ports are set.
func (p *Ports) Validate() error {
	if p.Bakeries == nil {
		return ErrMissingBakeryService
	}
	if p.BakedGoods == nil {
		return ErrMissingBakedGoodService
	}
	return nil
}
