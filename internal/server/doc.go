// Package server wires and runs the HTTP API server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown, after which the storage resources handed to it are closed.
package server
