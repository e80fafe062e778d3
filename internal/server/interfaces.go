package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or the process
	// receives SIGINT, SIGTERM or SIGQUIT, then shuts down gracefully.
	// It returns nil on a clean shutdown.
	RunServer(ctx context.Context) error
}
