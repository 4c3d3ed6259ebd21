// Package delivery defines the inbound surfaces of the admin console.
package delivery

import "context"

// Delivery is a long-running inbound surface (HTTP server, job scheduler)
// started by the application container. Serve blocks until the surface stops
// or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
