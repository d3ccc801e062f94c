// Package graphql provides a GraphQL HTTP client for communicating with the
// Clueless outfit API.
package graphql

import "context"

// GraphQLError represents a single error returned in a GraphQL response.
type GraphQLError struct {
	Message string `json:"message"`
}

// Response is the raw result of a GraphQL HTTP round-trip, captured before
// any status inspection or envelope decoding.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client defines the interface for executing GraphQL queries.
type Client interface {
	// Execute runs a query and returns the raw bytes of the response's
	// "data" field, surfacing transport, HTTP, and GraphQL errors.
	Execute(ctx context.Context, query string, variables map[string]any) ([]byte, error)
	// Do runs a query and returns the HTTP status code and body verbatim,
	// failing only when the request itself cannot be sent.
	Do(ctx context.Context, query string, variables map[string]any) (*Response, error)
}
