package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-auth-shell/models"
)

// Init builds the router of the authentication server.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// authentication
	router.Group(func(r chi.Router) {
		r.Post("/signin", h.signIn)
		r.Post("/signup", h.signUp)
		r.Post("/register", h.signUp)
		r.Post("/reset_password", h.resetPassword)
	})

	// signed-in users
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.home)

		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.AdminRoleName))
			r.Get("/admin", h.listUsers)
			r.Get("/admin/users", h.listUsers)
			r.Post("/admin/deactivate/{userID}", h.deactivateUser)
			r.Post("/admin/change_role/{userID}/{role}", h.changeRole)
			r.Delete("/admin/delete_user/{userID}", h.deleteUser)
		})
	})

	// service routes
	router.Get("/api/version/", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
