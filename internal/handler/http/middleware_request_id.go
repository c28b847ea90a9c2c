package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/intern-match/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var requestID string
		if requestIDFromHeader := r.Header.Get(requestIDHeader); requestIDFromHeader != "" {
			requestID = requestIDFromHeader
		} else {
			requestID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		ctx = context.WithValue(l.WithContext(ctx), utils.RequestIDCtxKey, requestID)

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
