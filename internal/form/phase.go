// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

// Phase is the submission lifecycle stage of a single form instance.
type Phase int

const (
	// Idle accepts edits and a new submission.
	Idle Phase = iota
	// Submitting has a request in flight; further submits are rejected.
	Submitting
	// Succeeded means the last submission returned Ok.
	Succeeded
	// Failed means the last submission ended in any non-Ok outcome.
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

var transitions = map[Phase][]Phase{
	Idle:       {Submitting},
	Submitting: {Succeeded, Failed},
	Succeeded:  {Idle},
	Failed:     {Idle},
}

func (p Phase) canMoveTo(next Phase) bool {
	for _, allowed := range transitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the last submission has settled.
func (p Phase) Terminal() bool {
	return p == Succeeded || p == Failed
}
