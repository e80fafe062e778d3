// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"errors"
	"strings"
)

var (
	ErrUnknownField       = errors.New("unknown form field")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrInvalidTransition  = errors.New("invalid phase transition")
)

// MissingFieldError lists the declared fields that failed their rules when a
// submission was attempted.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return "missing required field(s): " + strings.Join(e.Fields, ", ")
}
