package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/bloghub/internal/common"
)

type ctxKey struct{}

// ErrorWriter renders an authentication failure.
type ErrorWriter func(w http.ResponseWriter, status int, msg string)

// RequireBearer rejects requests without a valid "Authorization: Bearer"
// token and stores the token subject in the request context.
func RequireBearer(secretKey []byte, writeError ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				writeError(w, http.StatusUnauthorized, "Missing bearer token")
				return
			}

			nickname, err := GetNicknameFromToken(strings.TrimSpace(token), secretKey)
			if err != nil {
				msg := "Invalid token"
				if errors.Is(err, common.ErrTokenExpired) {
					msg = "Token expired"
				}
				writeError(w, http.StatusUnauthorized, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, nickname)))
		})
	}
}

// NicknameFromContext returns the authenticated nickname, if any.
func NicknameFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKey{}).(string)
	return v, ok
}
