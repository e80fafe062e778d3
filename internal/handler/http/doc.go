// Package http implements the HTTP transport layer of the authentication
// server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, metrics, bearer token
// authentication and role checks are handled in this package before
// requests are delegated to the service layer.
package http
