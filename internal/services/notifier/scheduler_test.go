package services

import (
	"context"
	"errors"
	"testing"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindOverdueDebts(ctx context.Context) ([]*models.OverdueDebt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.OverdueDebt), args.Error(1)
}

func TestSchedulerService_runFindOverdueDebts(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *MockDebtRepository)
	}{
		{
			name: "no overdue debts",
			setupMocks: func(r *MockDebtRepository) {
				r.On("FindOverdueDebts", mock.Anything).Return([]*models.OverdueDebt{}, nil).Once()
			},
		},
		{
			name: "repository error is logged, not returned",
			setupMocks: func(r *MockDebtRepository) {
				r.On("FindOverdueDebts", mock.Anything).Return(nil, errors.New("db error")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockDebtRepository)
			tt.setupMocks(repo)

			svc := NewSchedulerService(repo, testLogger())
			svc.runFindOverdueDebts(context.Background(), nil)

			repo.AssertExpectations(t)
		})
	}
}
