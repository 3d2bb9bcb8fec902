// Package delivery defines the long-running entry points started by cmd/tracker.
package delivery

import "context"

// Delivery is a blocking server started once the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
