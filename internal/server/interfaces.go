package server

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives or the listener fails.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown()
}
