// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidJSON is returned by decodeJSON when the request body is not a
// single JSON object of the expected shape.
var ErrInvalidJSON = errors.New("invalid JSON was passed")

var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is
	// requested without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken is returned when the header names the scheme but
	// carries no token.
	ErrEmptyToken = errors.New("empty token")

	// ErrInvalidUserID is returned when the {userID} path segment is not a
	// positive integer.
	ErrInvalidUserID = errors.New("invalid user id")
)
