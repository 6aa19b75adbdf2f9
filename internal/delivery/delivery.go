// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a serving surface (e.g., the HTTP server) managed by the
// application lifecycle.
type Delivery interface {
	// Serve blocks, handling requests until the listener is closed.
	Serve(ctx context.Context) error
}
