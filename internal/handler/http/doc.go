// Package http implements the HTTP transport of the demo agent.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging and response compression are handled in this
// package before requests are delegated to the service layer.
package http
