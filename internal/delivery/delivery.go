// Package delivery defines the contract every transport entry point of
// the application satisfies.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server, a worker loop)
// started by the application container.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
