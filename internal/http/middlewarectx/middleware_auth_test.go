package middlewarectx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/magabrotheeeer/telecom-registry/internal/lib/jwt"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestIdentityMiddleware(t *testing.T) {
	maker := jwt.NewMaker("test-secret", time.Hour)
	token, err := maker.GenerateToken("operator1", "operator")
	assert.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		wantLogin string
		wantRole  models.Role
	}{
		{
			name:      "valid token",
			header:    "Bearer " + token,
			wantLogin: "operator1",
			wantRole:  models.RoleOperator,
		},
		{
			name:     "missing header means guest",
			wantRole: models.RoleGuest,
		},
		{
			name:     "garbage token means guest",
			header:   "Bearer not-a-token",
			wantRole: models.RoleGuest,
		},
		{
			name:     "wrong scheme means guest",
			header:   "Basic dXNlcjpwYXNz",
			wantRole: models.RoleGuest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLogin string
			var gotRole models.Role
			next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotLogin = UserFromContext(r.Context())
				gotRole = RoleFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/subscribers", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			IdentityMiddleware(maker, testLogger())(next).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantLogin, gotLogin)
			assert.Equal(t, tt.wantRole, gotRole)
		})
	}
}

func TestIdentityMiddleware_ExpiredToken(t *testing.T) {
	maker := jwt.NewMaker("test-secret", -time.Hour)
	token, err := maker.GenerateToken("operator1", "operator")
	assert.NoError(t, err)

	var gotRole models.Role
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotRole = RoleFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/subscribers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	IdentityMiddleware(maker, testLogger())(next).ServeHTTP(w, req)

	assert.Equal(t, models.RoleGuest, gotRole)
}
