// Package delivery defines the transports that expose the service.
package delivery

import "context"

// Delivery is a long-running transport. Serve blocks until the transport
// stops; shutdown is driven by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
