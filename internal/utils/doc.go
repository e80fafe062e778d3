// Package utils provides general-purpose helpers shared by the client and
// the server: HTTP client construction, JSON response writing, JWT issuing
// and validation, UUID generation, and typed context keys for the
// authenticated user.
package utils
