package httpapi

import "errors"

// Errors for server initialization.
var (
	// ErrMissingBakeryService is returned when the bakery service is nil.
	ErrMissingBakeryService = errors.New("httpapi: bakery service is required")

	// ErrMissingBakedGoodService is returned when the baked good service is nil.
	ErrMissingBakedGoodService = errors.New("httpapi: baked good service is required")
)
