package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/anhtong/guild-api/internal/model"
	"github.com/anhtong/guild-api/pkg/token"
)

// IdentityKey is the context key for the authenticated identity
const IdentityKey contextKey = "identity"

// Auth returns a middleware that validates bearer tokens
func Auth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				model.NewUnauthorizedError("missing authorization header").WriteJSON(w)
				return
			}

			// Check Bearer prefix
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				model.NewUnauthorizedError("invalid authorization header format").WriteJSON(w)
				return
			}

			identity, err := token.Parse(parts[1])
			if err != nil {
				model.NewUnauthorizedError("invalid token").WriteJSON(w)
				return
			}

			// Add identity to context
			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			ctx = context.WithValue(ctx, UserIDKey, identity.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin returns a middleware that rejects non-admin callers.
// It must run after Auth.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := GetIdentity(r.Context())
			if identity == nil {
				model.NewUnauthorizedError("authentication required").WriteJSON(w)
				return
			}
			if !identity.IsAdmin {
				model.NewForbiddenError("admin access required").WriteJSON(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetIdentity extracts the authenticated identity from context
func GetIdentity(ctx context.Context) *token.Identity {
	if identity, ok := ctx.Value(IdentityKey).(*token.Identity); ok {
		return identity
	}
	return nil
}

// GetUserID extracts the user ID from context
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}
