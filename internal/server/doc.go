// Package server runs the Message Store HTTP server.
//
// It covers startup, signal handling and graceful shutdown: on SIGTERM,
// SIGINT or SIGQUIT the server stops accepting connections and waits for
// in-flight requests before returning.
package server
