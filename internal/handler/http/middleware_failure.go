package http

import (
	"net/http"

	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/utils"
)

// withFailureInjection fails the configured share of requests with 503 so
// that client retries can be observed against the dev server.
func (h *Handler) withFailureInjection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.failureRate > 0 && h.roll() < h.failureRate {
			logger.FromRequest(r).Debug().Msg("injected failure")
			utils.WriteError(w, ErrInjectedFailure.Error(), http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r)
	})
}
