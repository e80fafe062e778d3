// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// authentication server handlers.
//
// All Msg* constants are the human-readable "message" values written into
// HTTP response bodies. Clients show them to the user verbatim, so the
// wording is part of the API.
package app

// Sign-in replies.
const (
	MsgUserLoggedIn     = "User logged in successfully."
	MsgUserDoesNotExist = "User doesn't exist."
	MsgWrongPassword    = "Wrong password."
)

// Sign-up replies.
const (
	MsgUserRegistered    = "User registered successfully."
	MsgUserAlreadyExists = "User already exists."
)

// Password reset replies.
const (
	MsgPasswordUpdated      = "Password updated successfully."
	MsgOldPasswordIncorrect = "Old password is incorrect."
	MsgUserNotFound         = "User not found."
)

// Replies of the routes that require a signed-in user.
const (
	MsgHomePage        = "Home Page"
	MsgUnauthorized    = "Authentication required."
	MsgForbidden       = "You do not have permission to access this resource."
	MsgUserDeactivated = "User deactivated successfully."
	MsgUserRoleUpdated = "User role updated successfully."
	MsgUserDeleted     = "User deleted successfully."
)

// Replies shared by every endpoint.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
