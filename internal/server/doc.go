// Package server runs the demo agent's HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
