// Package delivery defines the contract every transport entry point
// (HTTP server, workers) implements so main can run them uniformly.
package delivery

import "context"

// Delivery is a long-running transport endpoint.
type Delivery interface {
	// Serve blocks, serving requests until the context is canceled or a
	// fatal error occurs.
	Serve(ctx context.Context) error
}
