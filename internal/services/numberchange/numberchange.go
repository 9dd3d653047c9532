// Package services содержит бизнес-логику заявок на смену
// телефонного номера.
package services

import (
	"context"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// RequestRepository описывает контракт хранилища заявок на смену номера.
type RequestRepository interface {
	ListNumberChangeRequests(ctx context.Context) ([]*models.NumberChangeRow, error)
	GetNumberChangeRequest(ctx context.Context, id int) (*models.NumberChangeRequest, error)
	CreateNumberChangeRequest(ctx context.Context, req models.CreateNumberChangeRequest) (int, error)
	UpdateNumberChangeStatus(ctx context.Context, id int, status string) (int, error)
	DeleteNumberChangeRequest(ctx context.Context, id int) (int, error)
	ApplyNumberChange(ctx context.Context, req *models.NumberChangeRequest) error
}

// NumberChangeService реализует жизненный цикл заявки на смену номера.
type NumberChangeService struct {
	repo RequestRepository
}

// NewNumberChangeService создает новый экземпляр NumberChangeService.
func NewNumberChangeService(repo RequestRepository) *NumberChangeService {
	return &NumberChangeService{repo: repo}
}

// List возвращает заявки вместе с ФИО абонентов, свежие первыми.
func (s *NumberChangeService) List(ctx context.Context) ([]*models.NumberChangeRow, error) {
	return s.repo.ListNumberChangeRequests(ctx)
}

// Create подаёт заявку от имени абонента.
func (s *NumberChangeService) Create(ctx context.Context, req models.CreateNumberChangeRequest) (int, error) {
	return s.repo.CreateNumberChangeRequest(ctx, req)
}

// Approve применяет заявку: старый номер удаляется, новый создаётся,
// заявка исчезает. false без ошибки — заявки с таким id нет.
func (s *NumberChangeService) Approve(ctx context.Context, id int) (bool, error) {
	req, err := s.repo.GetNumberChangeRequest(ctx, id)
	if err != nil {
		return false, err
	}
	if req == nil {
		return false, nil
	}
	if err := s.repo.ApplyNumberChange(ctx, req); err != nil {
		return false, err
	}
	return true, nil
}

// Reject удаляет заявку без изменения номеров.
func (s *NumberChangeService) Reject(ctx context.Context, id int) (int, error) {
	return s.repo.DeleteNumberChangeRequest(ctx, id)
}

// SetStatus помечает заявку новым статусом, не применяя её.
func (s *NumberChangeService) SetStatus(ctx context.Context, id int, status string) (int, error) {
	return s.repo.UpdateNumberChangeStatus(ctx, id, status)
}
