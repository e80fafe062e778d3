// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// OutcomeKind tags the variant held by an [AuthOutcome].
type OutcomeKind int

const (
	// OutcomeOk means the server accepted the request.
	OutcomeOk OutcomeKind = iota
	// OutcomeRejectedByServer means the server replied with a non-2xx status.
	OutcomeRejectedByServer
	// OutcomeNoResponse means the request was sent but no reply arrived.
	OutcomeNoResponse
	// OutcomeRequestSetupError means the request failed before dispatch.
	OutcomeRequestSetupError
)

// String implements [fmt.Stringer].
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOk:
		return "ok"
	case OutcomeRejectedByServer:
		return "rejected_by_server"
	case OutcomeNoResponse:
		return "no_response"
	case OutcomeRequestSetupError:
		return "request_setup_error"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// AuthOutcome is the classified result of one credential submission.
// Only the fields relevant to Kind are populated:
//   - OutcomeOk:                Message (server-authored)
//   - OutcomeRejectedByServer:  StatusCode, Message (server-authored)
//   - OutcomeNoResponse:        nothing
//   - OutcomeRequestSetupError: Message (local error text)
type AuthOutcome struct {
	Kind       OutcomeKind
	StatusCode int
	Message    string
}

// Ok builds the success variant.
func Ok(message string) AuthOutcome {
	return AuthOutcome{Kind: OutcomeOk, Message: message}
}

// RejectedByServer builds the variant for a server that was reached but
// declined the request.
func RejectedByServer(statusCode int, message string) AuthOutcome {
	return AuthOutcome{Kind: OutcomeRejectedByServer, StatusCode: statusCode, Message: message}
}

// NoResponse builds the variant for a request that got no reply.
func NoResponse() AuthOutcome {
	return AuthOutcome{Kind: OutcomeNoResponse}
}

// RequestSetupError builds the variant for a failure before dispatch.
func RequestSetupError(message string) AuthOutcome {
	return AuthOutcome{Kind: OutcomeRequestSetupError, Message: message}
}

// IsOk reports whether the outcome is the success variant.
func (o AuthOutcome) IsOk() bool {
	return o.Kind == OutcomeOk
}
