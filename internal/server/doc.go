// Package server runs the HTTP transport of the authentication server.
//
// It owns the listener lifecycle: startup, OS signal handling and graceful
// shutdown bounded by a timeout.
package server
