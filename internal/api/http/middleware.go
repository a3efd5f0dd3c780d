package http

import (
	"context"
	"net/http"
	"strings"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/security"

	"github.com/google/uuid"
)

type contextKey string

const identityKey contextKey = "identity"

// callerFrom returns the authenticated caller stored by AuthMiddleware.
func callerFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok
}

// RequestIDMiddleware tags each request with an id and logs its arrival.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		logger.WithRequest(requestID, r.Method, r.URL.Path).Debug("Request received")
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware validates the bearer token and stores the caller identity
// in the request context. Requests without a valid token are rejected.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, domain.Unauthorized("Authorization token required"))
				return
			}
			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, domain.Unauthorized("Invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
