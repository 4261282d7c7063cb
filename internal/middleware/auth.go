package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-cms-auth/internal/model"
	"go-cms-auth/internal/token"
)

type tokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

type contextKey string

const identityContextKey contextKey = "auth_identity"

// AuthMiddleware is the gate in front of every protected route. Which
// routes it guards is decided once at router construction; the gate itself
// never inspects paths.
type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeUnauthorized(w, model.ErrMissingToken.Error())
			return
		}

		raw := strings.TrimSpace(header[len(token.BearerPrefix):])
		claims, err := m.verifier.Verify(raw)
		if err != nil {
			// Expired, malformed and bad-signature tokens all collapse
			// into the same fixed message.
			writeUnauthorized(w, model.ErrUnauthorized.Error())
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext recovers the claims RequireAuth attached for the
// current request.
func IdentityFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(identityContextKey).(*token.Claims)
	return claims, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = jsonEncode(w, model.Response{Status: 1, Message: message})
}
