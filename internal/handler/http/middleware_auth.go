package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/intern-match/internal/logger"
	"github.com/MKhiriev/intern-match/internal/utils"
)

// auth enforces bearer-token authentication.
//
// The token must be an HS256 JWT signed with the server key and issued by
// the server's issuer. Its subject becomes the owner of the request and is
// stored in the context under [utils.OwnerCtxKey]. Every rejection is a 401
// with a JSON error body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		owner, err := utils.ValidateAndParseJWTToken(tokenString, h.signKey, h.issuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.OwnerCtxKey, owner)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
