// Package delivery contains the transports that expose the usecases.
package delivery

import "context"

// Delivery is a long-running transport started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown(ctx context.Context) error
}
