package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID, withLogging, h.withRateLimit)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.withFailureInjection).Get("/api/notifications", h.listNotifications)
		r.Post("/api/notifications", h.publishNotification)
		r.Patch("/api/notifications/read-all", h.markAllNotificationsRead)
		r.Patch("/api/notifications/{id}/read", h.markNotificationRead)
		r.Delete("/api/notifications", h.clearNotifications)

		r.Get("/api/applications", h.listApplications)
		r.Get("/api/internships", h.listInternships)
		r.Get("/api/internships/{id}", h.getInternship)
	})

	return router
}
