package requestapprove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockService реализует интерфейс requestapprove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Approve(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestApproveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "заявка применена",
			id:   "5",
			setupMock: func(m *MockService) {
				m.On("Approve", mock.Anything, 5).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"approved":true`,
		},
		{
			name: "заявка не найдена",
			id:   "42",
			setupMock: func(m *MockService) {
				m.On("Approve", mock.Anything, 42).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `request not found`,
		},
		{
			name:           "некорректный id",
			id:             "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request id`,
		},
		{
			name: "ошибка сервиса",
			id:   "5",
			setupMock: func(m *MockService) {
				m.On("Approve", mock.Anything, 5).Return(false, errors.New("tx failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not approve request`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/requests/"+tt.id+"/approve", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
