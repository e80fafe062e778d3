// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form implements the controller behind every credential form of the
// client.
//
// A [Controller] owns the field values of one mounted view and drives at most
// one submission at a time through the phases
//
//	Idle → Submitting → Succeeded | Failed → Idle → ...
//
// Submitting is split in two so it fits an event loop: [Controller.Begin]
// runs synchronously and either refuses (already in flight, missing field)
// or snapshots the fields and enters Submitting; [Submission.Run] performs
// the single network call and records the classified [models.AuthOutcome].
// [Controller.Submit] chains both for callers that can block.
package form
