package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"LinkUp/internal/api/handlers"
	"LinkUp/internal/auth"
)

// Context keys for storing session information
type contextKey string

const (
	userIDKey contextKey = "user_id"
	claimsKey contextKey = "session_claims"
)

// SessionVerifier validates bearer tokens. Implemented by auth.TokenIssuer.
type SessionVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware enforces bearer-token authentication on protected routes.
// Identity is derived fresh from the token on every request; there is no
// session cache.
type AuthMiddleware struct {
	verifier SessionVerifier
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier SessionVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth rejects requests without a valid bearer token and injects
// the verified claims into the request context.
// Missing credentials get 401; presented-but-invalid credentials get 403.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			handlers.WriteFailure(w, http.StatusUnauthorized, "No token provided")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			handlers.WriteFailure(w, http.StatusUnauthorized, "Expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := m.verifier.Verify(token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			handlers.WriteFailure(w, http.StatusForbidden, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the verified user id from the request context.
// Returns empty string if the request is not authenticated.
func GetUserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

// GetClaims extracts the session claims from the request context.
// Returns nil if the request is not authenticated.
func GetClaims(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(claimsKey).(*auth.Claims)
	return claims
}

// WithTestUserID injects a user id into the context.
// Tests only: lets handler tests mock an authenticated request.
func WithTestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
