package http

import (
	"context"
	"net/http"

	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/utils"
)

// sessionAuth is an HTTP middleware that enforces session authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, verifies its HMAC signature and issuer against the configured
// settings, and — on success — stores the identity provider's user key
// from the "sub" claim in the request context under [utils.ClerkIDCtxKey]
// before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is
// absent, cannot be parsed as a bearer token, or carries an expired or
// otherwise invalid token.
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.auth.TokenSignKey, h.auth.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the session's user key in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.ClerkIDCtxKey, token.ClerkID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
