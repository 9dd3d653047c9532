package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
	authservice "github.com/magabrotheeeer/telecom-registry/internal/services/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, login, rawPassword string) (string, models.Role, error) {
	args := m.Called(ctx, login, rawPassword)
	return args.String(0), args.Get(1).(models.Role), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный вход",
			body: `{"login":"operator1","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "operator1", "secret123").
					Return("signed-token", models.RoleOperator, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"signed-token"`,
		},
		{
			name: "неверные учетные данные",
			body: `{"login":"operator1","password":"wrong"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "operator1", "wrong").
					Return("", models.RoleGuest, authservice.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `invalid login or password`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"login":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "пустой пароль",
			body:           `{"login":"operator1","password":""}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password is a required field`,
		},
		{
			name: "ошибка сервиса",
			body: `{"login":"operator1","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "operator1", "secret123").
					Return("", models.RoleGuest, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `internal service error`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
