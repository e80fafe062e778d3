package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-auth-shell/internal/app"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/internal/utils"
	"github.com/MKhiriev/go-auth-shell/models"
)

const (
	opListUsers      = "list_users"
	opDeactivateUser = "deactivate_user"
	opChangeRole     = "change_role"
	opDeleteUser     = "delete_user"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, models.MessageResponse{Message: app.MsgHomePage})
}

// listUsers serves both /admin and /admin/users.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AdminService.ListUsers(r.Context())
	if err != nil {
		h.replyAdminError(w, r, opListUsers, err)
		return
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, models.NewUserSummary(u))
	}
	respond(w, r, http.StatusOK, summaries)
}

func (h *Handler) deactivateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		h.replyAdminError(w, r, opDeactivateUser, err)
		return
	}

	if err = h.services.AdminService.DeactivateUser(r.Context(), userID); err != nil {
		h.replyAdminError(w, r, opDeactivateUser, err)
		return
	}

	h.logAdminAction(r, opDeactivateUser, userID)
	respond(w, r, http.StatusOK, models.MessageResponse{Message: app.MsgUserDeactivated})
}

func (h *Handler) changeRole(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		h.replyAdminError(w, r, opChangeRole, err)
		return
	}

	if err = h.services.AdminService.ChangeRole(r.Context(), userID, chi.URLParam(r, "role")); err != nil {
		h.replyAdminError(w, r, opChangeRole, err)
		return
	}

	h.logAdminAction(r, opChangeRole, userID)
	respond(w, r, http.StatusOK, models.MessageResponse{Message: app.MsgUserRoleUpdated})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		h.replyAdminError(w, r, opDeleteUser, err)
		return
	}

	if err = h.services.AdminService.DeleteUser(r.Context(), userID); err != nil {
		h.replyAdminError(w, r, opDeleteUser, err)
		return
	}

	h.logAdminAction(r, opDeleteUser, userID)
	respond(w, r, http.StatusOK, models.MessageResponse{Message: app.MsgUserDeleted})
}

func (h *Handler) replyAdminError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, body := errorResponse(r, op, err, adminMessages)
	respond(w, r, status, body)
}

func (h *Handler) logAdminAction(r *http.Request, op string, userID int64) {
	admin, _ := utils.GetUserFromContext(r.Context())
	logger.FromRequest(r).Info().
		Int64("admin_id", admin.UserID).
		Int64("user_id", userID).
		Str("operation", op).
		Msg("admin action applied")
}

func userIDParam(r *http.Request) (int64, error) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidUserID
	}
	return userID, nil
}
