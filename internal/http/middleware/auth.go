package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pixeltrack/pixeltrack/internal/domain"
)

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	userEmailKey contextKey = "user_email"
	requestIDKey contextKey = "request_id"
)

// TokenParser validates access tokens
type TokenParser interface {
	ParseAccessToken(token string) (*domain.UserClaims, error)
}

type AuthMiddleware struct {
	parser TokenParser
}

func NewAuthMiddleware(parser TokenParser) *AuthMiddleware {
	return &AuthMiddleware{parser: parser}
}

// RequireAuth rejects requests without a valid Bearer access token and puts the user id in the context
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteError(w, r, "Token não fornecido", http.StatusUnauthorized)
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			WriteError(w, r, "Formato de token inválido", http.StatusUnauthorized)
			return
		}

		claims, err := m.parser.ParseAccessToken(strings.TrimSpace(token))
		if err != nil {
			WriteError(w, r, "Token inválido ou expirado", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), claims.UserID, claims.Email)))
	})
}

// WithUser stores the authenticated user in ctx
func WithUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userEmailKey, email)
}

// UserIDFromContext returns the id set by RequireAuth
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
