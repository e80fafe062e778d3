// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels exposed by [RequestError.Unwrap] for server replies.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseInfo describes a non-2xx reply.
type ResponseInfo struct {
	Status  int
	Message string
	Body    []byte
}

// RequestInfo describes a request that left the client.
type RequestInfo struct {
	Method string
	URL    string
}

// RequestError is the single failure type returned by [ServerAdapter].
//
// Exactly one of these holds:
//   - Response != nil: the server replied with a non-2xx status;
//   - Request != nil, Response == nil: the request was sent and no reply came;
//   - both nil: the request failed before it was dispatched.
type RequestError struct {
	Response *ResponseInfo
	Request  *RequestInfo
	Message  string
	Err      error
}

func (e *RequestError) Error() string {
	switch {
	case e.Response != nil:
		return fmt.Sprintf("http %d: %s", e.Response.Status, e.Response.Message)
	case e.Request != nil:
		return fmt.Sprintf("%s %s: no response: %s", e.Request.Method, e.Request.URL, e.Message)
	default:
		return "request setup: " + e.Message
	}
}

// Unwrap returns the status sentinel for server replies and the transport
// cause otherwise.
func (e *RequestError) Unwrap() error {
	if e.Response != nil {
		return statusSentinel(e.Response.Status)
	}
	return e.Err
}
