package tui

import (
	"context"

	"github.com/MKhiriev/go-auth-shell/internal/adapter"
	"github.com/MKhiriev/go-auth-shell/internal/form"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
)

// SignUpEndpoint is the server path the register page submits to.
const SignUpEndpoint = "/signup"

// NewRegisterModel builds the register page bound to [SignUpEndpoint]. It
// mirrors the login page: same fields, different endpoint and texts.
func NewRegisterModel(ctx context.Context, client adapter.ServerAdapter, logger *logger.Logger) *CredentialModel {
	controller := form.New(client, SignUpEndpoint, credentialFields(), logger)
	view := credentialView{
		title:         "REGISTER",
		submitLabel:   "Sign up",
		failurePrefix: "Registration failed: ",
	}
	return newCredentialModel(ctx, view, controller, logger)
}
