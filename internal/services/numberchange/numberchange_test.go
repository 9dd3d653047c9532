package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
	services "github.com/magabrotheeeer/telecom-registry/internal/services/numberchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type RequestRepoMock struct {
	mock.Mock
}

func (m *RequestRepoMock) ListNumberChangeRequests(ctx context.Context) ([]*models.NumberChangeRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.NumberChangeRow), args.Error(1)
}

func (m *RequestRepoMock) GetNumberChangeRequest(ctx context.Context, id int) (*models.NumberChangeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NumberChangeRequest), args.Error(1)
}

func (m *RequestRepoMock) CreateNumberChangeRequest(ctx context.Context, req models.CreateNumberChangeRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func (m *RequestRepoMock) UpdateNumberChangeStatus(ctx context.Context, id int, status string) (int, error) {
	args := m.Called(ctx, id, status)
	return args.Int(0), args.Error(1)
}

func (m *RequestRepoMock) DeleteNumberChangeRequest(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *RequestRepoMock) ApplyNumberChange(ctx context.Context, req *models.NumberChangeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func TestNumberChangeService_Approve(t *testing.T) {
	request := &models.NumberChangeRequest{
		ID:           5,
		SubscriberID: 1,
		OldNumber:    "0671111111",
		NewNumber:    "0672222222",
	}

	tests := []struct {
		name       string
		id         int
		setupMocks func(r *RequestRepoMock)
		wantOK     bool
		wantErr    bool
	}{
		{
			name: "request applied",
			id:   5,
			setupMocks: func(r *RequestRepoMock) {
				r.On("GetNumberChangeRequest", mock.Anything, 5).Return(request, nil).Once()
				r.On("ApplyNumberChange", mock.Anything, request).Return(nil).Once()
			},
			wantOK: true,
		},
		{
			name: "request not found, no side effects",
			id:   42,
			setupMocks: func(r *RequestRepoMock) {
				r.On("GetNumberChangeRequest", mock.Anything, 42).Return(nil, nil).Once()
			},
			wantOK: false,
		},
		{
			name: "apply fails",
			id:   5,
			setupMocks: func(r *RequestRepoMock) {
				r.On("GetNumberChangeRequest", mock.Anything, 5).Return(request, nil).Once()
				r.On("ApplyNumberChange", mock.Anything, request).Return(errors.New("tx failed")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RequestRepoMock)
			tt.setupMocks(repo)

			svc := services.NewNumberChangeService(repo)
			ok, err := svc.Approve(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOK, ok)
			}
			repo.AssertExpectations(t)
			repo.AssertNotCalled(t, "DeleteNumberChangeRequest")
		})
	}
}

func TestNumberChangeService_Reject(t *testing.T) {
	repo := new(RequestRepoMock)
	repo.On("DeleteNumberChangeRequest", mock.Anything, 5).Return(1, nil).Once()

	svc := services.NewNumberChangeService(repo)
	count, err := svc.Reject(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "ApplyNumberChange")
}
