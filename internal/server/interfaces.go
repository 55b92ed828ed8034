package server

// Server defines the lifecycle contract of the API server.
//
// RunServer blocks until a stop signal arrives or the listener fails;
// Shutdown drains in-flight requests and releases the resources the server
// was given.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
