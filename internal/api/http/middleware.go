package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/logger"
	"vecitools-backend/internal/security"
)

type contextKey string

const actorKey contextKey = "actor"

// AuthMiddleware validates the Bearer token and stores the authenticated
// actor in the request context. Handlers thread the actor into services as
// an explicit parameter; nothing below this layer reads it ambiently.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, domain.Unauthorizedf("missing bearer token"))
			return
		}
		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, domain.Unauthorizedf("invalid token: %v", err))
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeError(w, domain.Unauthorizedf("wrong token type"))
			return
		}

		actor := domain.Actor{UserID: claims.UserID, Role: claims.Role}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	})
}

// actorFrom returns the authenticated actor placed by AuthMiddleware.
func actorFrom(r *http.Request) domain.Actor {
	actor, _ := r.Context().Value(actorKey).(domain.Actor)
	return actor
}

// RequestLogging logs each request with method, path, and duration.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
