// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the client uses to talk to the
// authentication server.
//
// The primary abstraction is [ServerAdapter], which decouples the form
// controller from the underlying protocol. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPServerAdapter]).
//
// Every failed call is returned as a [*RequestError] whose shape tells how far
// the request got: a server response, a dispatched request without a reply,
// or neither. [Classify] turns that shape into a [models.AuthOutcome] in one
// place so callers never inspect transport errors themselves.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-shell/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// authentication server.
type ServerAdapter interface {
	// Post sends body as JSON to path and returns the decoded reply on a
	// 2xx status. Any other result is returned as a *RequestError.
	Post(ctx context.Context, path string, body any) (models.MessageResponse, error)
}
