package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-shell/internal/app"
	"github.com/MKhiriev/go-auth-shell/internal/service"
	"github.com/MKhiriev/go-auth-shell/internal/store"
	"github.com/MKhiriev/go-auth-shell/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                  http.StatusBadRequest,
	validators.ErrInvalidData:       http.StatusBadRequest,
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrWrongPassword:        http.StatusBadRequest,
	service.ErrOldPasswordIncorrect: http.StatusBadRequest,
	service.ErrTokenCreationFailed:  http.StatusInternalServerError,
	service.ErrUnauthorized:         http.StatusUnauthorized,
	service.ErrForbidden:            http.StatusForbidden,
	ErrInvalidUserID:                http.StatusNotFound,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,

	store.ErrRoleNotFound:         http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage pairs a sentinel with the reply text one endpoint uses for it.
type errorMessage struct {
	target  error
	message string
}

// errorMessages is checked in order; the first match wins.
type errorMessages []errorMessage

func (m errorMessages) messageFor(err error) string {
	for _, em := range m {
		if errors.Is(err, em.target) {
			return em.message
		}
	}
	return app.MsgInternalServerError
}

var (
	signInMessages = errorMessages{
		{target: ErrInvalidJSON, message: app.MsgInvalidDataProvided},
		{target: service.ErrInvalidDataProvided, message: app.MsgInvalidDataProvided},
		{target: store.ErrUserNotFound, message: app.MsgUserDoesNotExist},
		{target: service.ErrWrongPassword, message: app.MsgWrongPassword},
	}

	signUpMessages = errorMessages{
		{target: ErrInvalidJSON, message: app.MsgInvalidDataProvided},
		{target: service.ErrInvalidDataProvided, message: app.MsgInvalidDataProvided},
		{target: store.ErrUserAlreadyExists, message: app.MsgUserAlreadyExists},
	}

	resetPasswordMessages = errorMessages{
		{target: ErrInvalidJSON, message: app.MsgInvalidDataProvided},
		{target: service.ErrInvalidDataProvided, message: app.MsgInvalidDataProvided},
		{target: store.ErrUserNotFound, message: app.MsgUserNotFound},
		{target: service.ErrOldPasswordIncorrect, message: app.MsgOldPasswordIncorrect},
	}

	adminMessages = errorMessages{
		{target: ErrInvalidUserID, message: app.MsgUserNotFound},
		{target: store.ErrUserNotFound, message: app.MsgUserNotFound},
		{target: service.ErrInvalidDataProvided, message: app.MsgInvalidDataProvided},
	}
)
