package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/utils"
	"github.com/MKhiriev/intern-match/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoOwner)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeError(w, r, ErrInvalidLimit)
			return
		}
		limit = n
	}

	utils.WriteJSON(w, h.backend.Notifications(owner, limit), http.StatusOK)
}

// publishNotification adds a notification to the caller's feed. Read state,
// ID and timestamp are always assigned by the server.
func (h *Handler) publishNotification(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoOwner)
		return
	}

	var n models.NotificationItem
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		h.writeError(w, r, ErrInvalidRequestBody)
		return
	}
	if err := h.validator.Validate(r.Context(), n); err != nil {
		h.writeError(w, r, err)
		return
	}

	n.ID, n.Read = "", false
	n.Timestamp = time.Time{}
	utils.WriteJSON(w, h.backend.Publish(owner, n), http.StatusCreated)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoOwner)
		return
	}

	if err := h.backend.MarkRead(owner, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoOwner)
		return
	}

	h.backend.MarkAllRead(owner)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearNotifications(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoOwner)
		return
	}

	h.backend.Clear(owner)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Send()
	} else {
		log.Debug().Err(err).Int("status", status).Send()
	}
	utils.WriteError(w, err.Error(), status)
}
