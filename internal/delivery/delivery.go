// Package delivery defines the contract every transport (HTTP today) must
// satisfy so main can start them uniformly.
package delivery

import "context"

// Delivery is a running transport endpoint of the application.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
