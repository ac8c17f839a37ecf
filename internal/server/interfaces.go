package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations block in [RunServer] until they stop. A nil error means
// the server was stopped through [Shutdown]; any other return is a failure
// to listen or serve. Shutdown drains in-flight work until ctx expires.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
