package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
	services "github.com/magabrotheeeer/telecom-registry/internal/services/debt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type DebtRepoMock struct {
	mock.Mock
}

func (m *DebtRepoMock) ListDebtsBySubscriber(ctx context.Context, subscriberID int) ([]*models.Debt, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Debt), args.Error(1)
}

func (m *DebtRepoMock) CreateDebt(ctx context.Context, subscriberID int, amount float64,
	dateStart time.Time, deadline *time.Time, status string) (int, error) {
	args := m.Called(ctx, subscriberID, amount, dateStart, deadline, status)
	return args.Int(0), args.Error(1)
}

func (m *DebtRepoMock) DeleteDebt(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *DebtRepoMock) UpdateDebt(ctx context.Context, id int, amount float64, status string) (int, error) {
	args := m.Called(ctx, id, amount, status)
	return args.Int(0), args.Error(1)
}

func (m *DebtRepoMock) ListDebtors(ctx context.Context) ([]*models.DebtorTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DebtorTotal), args.Error(1)
}

func (m *DebtRepoMock) SearchDebtors(ctx context.Context, like string) ([]*models.DebtorRow, error) {
	args := m.Called(ctx, like)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DebtorRow), args.Error(1)
}

func TestDebtService_Add(t *testing.T) {
	tests := []struct {
		name       string
		req        models.CreateDebtRequest
		setupMocks func(r *DebtRepoMock)
		wantID     int
		wantErr    bool
	}{
		{
			name: "explicit dates",
			req:  models.CreateDebtRequest{Amount: 120.50, DateStart: "2026-01-10", Deadline: "2026-02-10"},
			setupMocks: func(r *DebtRepoMock) {
				start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
				deadline := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
				r.On("CreateDebt", mock.Anything, 1, 120.50, start, &deadline, models.DebtStatusActive).
					Return(7, nil).Once()
			},
			wantID: 7,
		},
		{
			name: "empty dates default to today and no deadline",
			req:  models.CreateDebtRequest{Amount: 50},
			setupMocks: func(r *DebtRepoMock) {
				r.On("CreateDebt", mock.Anything, 1, 50.0,
					mock.MatchedBy(func(start time.Time) bool {
						return time.Since(start) < time.Minute
					}),
					(*time.Time)(nil), models.DebtStatusActive).
					Return(8, nil).Once()
			},
			wantID: 8,
		},
		{
			name:       "malformed date start",
			req:        models.CreateDebtRequest{Amount: 50, DateStart: "10.01.2026"},
			setupMocks: func(r *DebtRepoMock) {},
			wantErr:    true,
		},
		{
			name:       "malformed deadline",
			req:        models.CreateDebtRequest{Amount: 50, Deadline: "never"},
			setupMocks: func(r *DebtRepoMock) {},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(DebtRepoMock)
			tt.setupMocks(repo)

			svc := services.NewDebtService(repo)
			id, err := svc.Add(context.Background(), 1, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				repo.AssertNotCalled(t, "CreateDebt")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestDebtService_SearchDebtorsTranslatesWildcards(t *testing.T) {
	repo := new(DebtRepoMock)
	repo.On("SearchDebtors", mock.Anything, "Кова%енко\\_").
		Return([]*models.DebtorRow{}, nil).Once()

	svc := services.NewDebtService(repo)
	_, err := svc.SearchDebtors(context.Background(), "Кова*енко_")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
