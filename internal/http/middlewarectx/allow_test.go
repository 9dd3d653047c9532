package middlewarectx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	tests := []struct {
		name           string
		role           models.Role
		allowed        []models.Role
		expectedStatus int
	}{
		{
			name:           "operator allowed",
			role:           models.RoleOperator,
			allowed:        []models.Role{models.RoleOperator, models.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "guest gets 401",
			role:           models.RoleGuest,
			allowed:        []models.Role{models.RoleUser, models.RoleOperator, models.RoleAdmin},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "user gets 403 on admin route",
			role:           models.RoleUser,
			allowed:        []models.Role{models.RoleAdmin},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "guest explicitly allowed",
			role:           models.RoleGuest,
			allowed:        []models.Role{models.RoleGuest, models.RoleUser, models.RoleOperator, models.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/subscribers", nil)
			ctx := context.WithValue(req.Context(), Role, tt.role)
			req = req.WithContext(ctx)
			w := httptest.NewRecorder()

			Allow(testLogger(), tt.allowed...)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
