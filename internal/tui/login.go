package tui

import (
	"context"

	"github.com/MKhiriev/go-auth-shell/internal/adapter"
	"github.com/MKhiriev/go-auth-shell/internal/form"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
)

// SignInEndpoint is the server path the login page submits to.
const SignInEndpoint = "/signin"

// credentialFields is the field set shared by the login and register pages.
func credentialFields() []form.Field {
	return []form.Field{
		{Name: "email", Label: "Email", Rules: "required"},
		{Name: "password", Label: "Password", Secret: true, Rules: "required"},
	}
}

// NewLoginModel builds the login page bound to [SignInEndpoint].
func NewLoginModel(ctx context.Context, client adapter.ServerAdapter, logger *logger.Logger) *CredentialModel {
	controller := form.New(client, SignInEndpoint, credentialFields(), logger)
	view := credentialView{
		title:         "LOG IN",
		submitLabel:   "Log in",
		failurePrefix: "Login failed: ",
	}
	return newCredentialModel(ctx, view, controller, logger)
}
