// Package services содержит бизнес-логику работы с абонентами:
// картотека, поиск по маске и телефонные номера.
package services

import (
	"context"

	"github.com/magabrotheeeer/telecom-registry/internal/lib/wildcard"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// SubscriberRepository описывает контракт хранилища абонентов.
type SubscriberRepository interface {
	ListSubscribers(ctx context.Context) ([]*models.SubscriberRow, error)
	GetSubscriber(ctx context.Context, id int) (*models.SubscriberDetails, error)
	CreateSubscriber(ctx context.Context, req models.CreateSubscriberRequest) (int, error)
	UpdateSubscriber(ctx context.Context, id int, req models.UpdateSubscriberRequest) (int, error)
	DeleteSubscriber(ctx context.Context, id int) (int, error)
	SearchSubscribers(ctx context.Context, like string) ([]*models.SubscriberRow, error)

	ListPhonesBySubscriber(ctx context.Context, subscriberID int) ([]*models.PhoneInfo, error)
	CreatePhone(ctx context.Context, phone models.PhoneNumber) (int, error)
	DeletePhone(ctx context.Context, id int) (int, error)
}

// SubscriberService реализует операции над картотекой абонентов.
type SubscriberService struct {
	repo SubscriberRepository
}

// NewSubscriberService создает новый экземпляр SubscriberService.
func NewSubscriberService(repo SubscriberRepository) *SubscriberService {
	return &SubscriberService{repo: repo}
}

// List возвращает всех абонентов с основным номером и адресом.
func (s *SubscriberService) List(ctx context.Context) ([]*models.SubscriberRow, error) {
	return s.repo.ListSubscribers(ctx)
}

// Get возвращает карточку абонента, nil если его нет.
func (s *SubscriberService) Get(ctx context.Context, id int) (*models.SubscriberDetails, error) {
	return s.repo.GetSubscriber(ctx, id)
}

// Create создаёт абонента вместе с адресом и почтовым отделением.
func (s *SubscriberService) Create(ctx context.Context, req models.CreateSubscriberRequest) (int, error) {
	return s.repo.CreateSubscriber(ctx, req)
}

// Update обновляет ФИО и адрес абонента, возвращает число
// затронутых строк. 0 означает, что абонента нет.
func (s *SubscriberService) Update(ctx context.Context, id int, req models.UpdateSubscriberRequest) (int, error) {
	return s.repo.UpdateSubscriber(ctx, id, req)
}

// Delete удаляет абонента вместе с номерами и долгами.
func (s *SubscriberService) Delete(ctx context.Context, id int) (int, error) {
	return s.repo.DeleteSubscriber(ctx, id)
}

// Search ищет абонентов по маске с подстановочными знаками * и ?.
// Маска сверяется с ФИО, номерами телефонов и номером отделения.
func (s *SubscriberService) Search(ctx context.Context, pattern string) ([]*models.SubscriberRow, error) {
	return s.repo.SearchSubscribers(ctx, wildcard.ToLike(pattern))
}

// ListPhones возвращает номера абонента.
func (s *SubscriberService) ListPhones(ctx context.Context, subscriberID int) ([]*models.PhoneInfo, error) {
	return s.repo.ListPhonesBySubscriber(ctx, subscriberID)
}

// AddPhone добавляет номер абоненту. Пустой тип трактуется как mobile.
func (s *SubscriberService) AddPhone(ctx context.Context, subscriberID int, req models.CreatePhoneRequest) (int, error) {
	phoneType := req.Type
	if phoneType == "" {
		phoneType = models.PhoneTypeMobile
	}
	return s.repo.CreatePhone(ctx, models.PhoneNumber{
		Number:       req.Number,
		Type:         phoneType,
		SubscriberID: &subscriberID,
		OperatorID:   req.OperatorID,
		Active:       true,
	})
}

// RemovePhone удаляет номер по его ID.
func (s *SubscriberService) RemovePhone(ctx context.Context, id int) (int, error) {
	return s.repo.DeletePhone(ctx, id)
}
