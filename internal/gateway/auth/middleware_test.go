package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainError(w http.ResponseWriter, status int, msg string) {
	http.Error(w, msg, status)
}

func TestRequireBearer(t *testing.T) {
	secret := []byte("secret")
	valid, err := GenerateToken("john", secret, time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken("john", secret, -time.Minute)
	require.NoError(t, err)

	var seen string
	h := RequireBearer(secret, plainError)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = NicknameFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing", "", http.StatusUnauthorized, "Missing bearer token"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Missing bearer token"},
		{"garbage", "Bearer nope", http.StatusUnauthorized, "Invalid token"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token expired"},
		{"valid", "Bearer " + valid, http.StatusNoContent, ""},
		{"lowercase scheme", "bearer " + valid, http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
			if tt.status == http.StatusNoContent {
				assert.Equal(t, "john", seen)
			}
		})
	}
}
