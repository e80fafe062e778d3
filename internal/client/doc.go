// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI to the process lifecycle: the UI runs until the
// user quits or the process receives SIGINT/SIGTERM.
package client
