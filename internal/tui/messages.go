package tui

import (
	"github.com/MKhiriev/go-auth-shell/internal/form"
	"github.com/MKhiriev/go-auth-shell/models"
)

// NavigateTo asks [RootModel] to mount the page registered under Path.
type NavigateTo struct {
	Path string
}

// SubmitResult carries the settled outcome of one form submission back to
// the view that started it. Source is the controller that submitted; a page
// mounted later has a different controller and ignores the result.
type SubmitResult struct {
	Source  *form.Controller
	Outcome models.AuthOutcome
}

type copiedMsg struct {
	err error
}
