package mcp

import (
	"github.com/custodia-labs/bakehouse/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Bakeries manages bakeries.
	Bakeries driving.BakeryService

	// BakedGoods manages baked goods.
	BakedGoods driving.BakedGoodService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Bakeries == nil {
		return ErrMissingBakeryService
	}
	if p.BakedGoods == nil {
		return ErrMissingBakedGoodService
	}
	return nil
}
