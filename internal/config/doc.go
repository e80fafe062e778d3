// Package config provides configuration loading, merging, and validation
// facilities for the client and server binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetClientConfig] for the terminal client and
// [GetServerConfig] for the authentication server.
package config
