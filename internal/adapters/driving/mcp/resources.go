package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Bakehouse resources.
	uriScheme = "bakehouse://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing bakeries.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "bakeries",
		Name:        "bakeries",
		Description: "List of all bakeries",
		MIMEType:    "application/json",
	}, s.handleBakeriesResource)

	// Template for a bakery's goods.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "bakeries/{bakeryId}/baked_goods",
		Name:        "bakery-baked-goods",
		Description: "Baked goods sold by a specific bakery",
		MIMEType:    "application/json",
	}, s.handleBakeryGoodsResource)
}

// handleBakeriesResource returns a list of all bakeries.
func (s *Server) handleBakeriesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	bakeries, err := s.ports.Bakeries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bakeries: %w", err)
	}

	infos := make([]BakeryOutput, len(bakeries))
	for i := range bakeries {
		infos[i] = toBakeryOutput(&bakeries[i])
	}

	return jsonResource(req.Params.URI, infos)
}

// handleBakeryGoodsResource returns the baked goods of one bakery.
func (s *Server) handleBakeryGoodsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract bakeryId from URI: bakehouse://bakeries/{bakeryId}/baked_goods
	bakeryID, ok := extractBakeryID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	goods, err := s.ports.BakedGoods.ListByBakery(ctx, bakeryID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("listing baked goods: %w", err)
	}

	return jsonResource(req.Params.URI, toBakedGoodsOutput(goods).BakedGoods)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractBakeryID extracts the bakery ID from a URI like bakehouse://bakeries/{bakeryId}/baked_goods.
func extractBakeryID(uri string) (int64, bool) {
	const prefix = uriScheme + "bakeries/"
	const suffix = "/baked_goods"

	if !strings.HasPrefix(uri, prefix) || !strings.HasSuffix(uri, suffix) {
		return 0, false
	}

	raw := strings.TrimSuffix(strings.TrimPrefix(uri, prefix), suffix)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
