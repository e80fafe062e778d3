package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-shell/internal/app"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/internal/utils"
	"github.com/MKhiriev/go-auth-shell/internal/validators"
	"github.com/MKhiriev/go-auth-shell/models"
)

const (
	opSignIn        = "signin"
	opSignUp        = "signup"
	opResetPassword = "reset_password"
)

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credential models.Credential
	if err := decodeJSON(r, &credential); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.replyError(w, r, opSignIn, err, signInMessages)
		return
	}

	user, err := h.services.AuthService.SignIn(ctx, credential)
	if err != nil {
		h.replyError(w, r, opSignIn, err, signInMessages)
		return
	}

	if !h.setToken(w, r, opSignIn, user) {
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	h.reply(w, r, opSignIn, http.StatusOK, models.MessageResponse{Message: app.MsgUserLoggedIn})
}

// signUp serves both /signup and /register.
func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.replyError(w, r, opSignUp, err, signUpMessages)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		var fieldErrs validators.FieldErrors
		if errors.As(err, &fieldErrs) {
			h.reply(w, r, opSignUp, http.StatusBadRequest, models.MessageResponse{Errors: fieldErrs})
			return
		}
		h.replyError(w, r, opSignUp, err, signUpMessages)
		return
	}

	if !h.setToken(w, r, opSignUp, user) {
		return
	}

	h.reply(w, r, opSignUp, http.StatusOK, models.MessageResponse{Message: app.MsgUserRegistered})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PasswordResetRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.replyError(w, r, opResetPassword, err, resetPasswordMessages)
		return
	}

	if err := h.services.AuthService.ResetPassword(ctx, req); err != nil {
		h.replyError(w, r, opResetPassword, err, resetPasswordMessages)
		return
	}

	h.reply(w, r, opResetPassword, http.StatusOK, models.MessageResponse{Message: app.MsgPasswordUpdated})
}

// setToken issues a token for user and puts it into the Authorization
// header. It replies 500 and reports false on failure.
func (h *Handler) setToken(w http.ResponseWriter, r *http.Request, op string, user models.User) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		h.reply(w, r, op, http.StatusInternalServerError, models.MessageResponse{Message: app.MsgInternalServerError})
		return false
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	return true
}

func (h *Handler) replyError(w http.ResponseWriter, r *http.Request, op string, err error, messages errorMessages) {
	status, body := errorResponse(r, op, err, messages)
	h.reply(w, r, op, status, body)
}

// reply writes body and counts the attempt in AuthAttemptsTotal.
func (h *Handler) reply(w http.ResponseWriter, r *http.Request, op string, status int, body models.MessageResponse) {
	h.metrics.AuthAttemptsTotal.WithLabelValues(op, authResult(status)).Inc()
	respond(w, r, status, body)
}

// errorResponse logs err and picks the status and message for it.
func errorResponse(r *http.Request, op string, err error, messages errorMessages) (int, models.MessageResponse) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("operation", op).Msg("unexpected error")
	} else {
		logger.FromRequest(r).Debug().Err(err).Str("operation", op).Int("status", status).Msg("request rejected")
	}

	return status, models.MessageResponse{Message: messages.messageFor(err)}
}

func respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func authResult(status int) string {
	switch {
	case status < http.StatusBadRequest:
		return "ok"
	case status < http.StatusInternalServerError:
		return "rejected"
	default:
		return "error"
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
