package services_test

import (
	"context"
	"testing"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
	services "github.com/magabrotheeeer/telecom-registry/internal/services/subscriber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type SubscriberRepoMock struct {
	mock.Mock
}

func (m *SubscriberRepoMock) ListSubscribers(ctx context.Context) ([]*models.SubscriberRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SubscriberRow), args.Error(1)
}

func (m *SubscriberRepoMock) GetSubscriber(ctx context.Context, id int) (*models.SubscriberDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriberDetails), args.Error(1)
}

func (m *SubscriberRepoMock) CreateSubscriber(ctx context.Context, req models.CreateSubscriberRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func (m *SubscriberRepoMock) UpdateSubscriber(ctx context.Context, id int, req models.UpdateSubscriberRequest) (int, error) {
	args := m.Called(ctx, id, req)
	return args.Int(0), args.Error(1)
}

func (m *SubscriberRepoMock) DeleteSubscriber(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *SubscriberRepoMock) SearchSubscribers(ctx context.Context, like string) ([]*models.SubscriberRow, error) {
	args := m.Called(ctx, like)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SubscriberRow), args.Error(1)
}

func (m *SubscriberRepoMock) ListPhonesBySubscriber(ctx context.Context, subscriberID int) ([]*models.PhoneInfo, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PhoneInfo), args.Error(1)
}

func (m *SubscriberRepoMock) CreatePhone(ctx context.Context, phone models.PhoneNumber) (int, error) {
	args := m.Called(ctx, phone)
	return args.Int(0), args.Error(1)
}

func (m *SubscriberRepoMock) DeletePhone(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func TestSubscriberService_SearchTranslatesWildcards(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		wantLike string
	}{
		{"star becomes percent", "Кова*", "Кова%"},
		{"question mark becomes underscore", "Іванов?", "Іванов_"},
		{"literal metacharacters escaped", "50%_скидка", "50\\%\\_скидка"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(SubscriberRepoMock)
			repo.On("SearchSubscribers", mock.Anything, tt.wantLike).
				Return([]*models.SubscriberRow{}, nil).Once()

			svc := services.NewSubscriberService(repo)
			_, err := svc.Search(context.Background(), tt.pattern)

			assert.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestSubscriberService_AddPhone(t *testing.T) {
	operatorID := 2

	tests := []struct {
		name      string
		req       models.CreatePhoneRequest
		wantPhone models.PhoneNumber
	}{
		{
			name: "explicit type",
			req:  models.CreatePhoneRequest{Number: "0951234567", Type: models.PhoneTypeHome},
			wantPhone: models.PhoneNumber{
				Number: "0951234567",
				Type:   models.PhoneTypeHome,
				Active: true,
			},
		},
		{
			name: "empty type defaults to mobile",
			req:  models.CreatePhoneRequest{Number: "0671234567", OperatorID: &operatorID},
			wantPhone: models.PhoneNumber{
				Number:     "0671234567",
				Type:       models.PhoneTypeMobile,
				OperatorID: &operatorID,
				Active:     true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subscriberID := 1
			tt.wantPhone.SubscriberID = &subscriberID

			repo := new(SubscriberRepoMock)
			repo.On("CreatePhone", mock.Anything, tt.wantPhone).Return(10, nil).Once()

			svc := services.NewSubscriberService(repo)
			id, err := svc.AddPhone(context.Background(), subscriberID, tt.req)

			assert.NoError(t, err)
			assert.Equal(t, 10, id)
			repo.AssertExpectations(t)
		})
	}
}
