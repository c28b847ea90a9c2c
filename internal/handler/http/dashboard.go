package http

import (
	"net/http"

	"github.com/MKhiriev/intern-match/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listApplications(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoOwner)
		return
	}

	utils.WriteJSON(w, h.backend.Applications(owner), http.StatusOK)
}

func (h *Handler) listInternships(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.backend.Internships(), http.StatusOK)
}

func (h *Handler) getInternship(w http.ResponseWriter, r *http.Request) {
	internship, err := h.backend.Internship(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, internship, http.StatusOK)
}
