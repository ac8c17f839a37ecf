// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTP, gRPC health and metrics listener
// lifecycles, including startup, signal handling, and graceful shutdown of
// all enabled transports. A listener that fails to bind stops the whole
// process.
package server
