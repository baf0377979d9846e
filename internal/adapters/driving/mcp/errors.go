// Package mcp provides an MCP (Model Context Protocol) server adapter for Bakehouse.
// It lets AI assistants list, create, rename and delete bakery records
// through the same services as the HTTP API.
package mcp

import "errors"

var (
	// ErrMissingBakeryService is returned when the bakery service is not provided.
	ErrMissingBakeryService = errors.New("mcp: bakery service is required")

	// ErrMissingBakedGoodService is returned when the baked good service is not provided.
	ErrMissingBakedGoodService = errors.New("mcp: baked good service is required")
)
