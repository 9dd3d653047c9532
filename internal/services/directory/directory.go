// Package services содержит бизнес-логику справочников: мобильные
// операторы, почтовые отделения и телефоны спецслужб.
package services

import (
	"context"

	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// DirectoryRepository описывает контракт хранилища справочников.
type DirectoryRepository interface {
	ListOperators(ctx context.Context) ([]*models.MobileOperator, error)
	CreateOperator(ctx context.Context, name, prefix string) (int, error)
	ListPostOffices(ctx context.Context) ([]*models.PostOfficeInfo, error)
	ListSpecialServices(ctx context.Context) ([]*models.SpecialServiceRow, error)
	CreateSpecialService(ctx context.Context, req models.CreateSpecialServiceRequest) (int, error)
}

// DirectoryService реализует чтение и пополнение справочников.
type DirectoryService struct {
	repo DirectoryRepository
}

// NewDirectoryService создает новый экземпляр DirectoryService.
func NewDirectoryService(repo DirectoryRepository) *DirectoryService {
	return &DirectoryService{repo: repo}
}

// Operators возвращает справочник мобильных операторов.
func (s *DirectoryService) Operators(ctx context.Context) ([]*models.MobileOperator, error) {
	return s.repo.ListOperators(ctx)
}

// AddOperator добавляет оператора с кодом сети.
func (s *DirectoryService) AddOperator(ctx context.Context, req models.CreateOperatorRequest) (int, error) {
	return s.repo.CreateOperator(ctx, req.Name, req.Prefix)
}

// PostOffices возвращает почтовые отделения с адресами.
func (s *DirectoryService) PostOffices(ctx context.Context) ([]*models.PostOfficeInfo, error) {
	return s.repo.ListPostOffices(ctx)
}

// SpecialServices возвращает телефоны экстренных и городских служб.
func (s *DirectoryService) SpecialServices(ctx context.Context) ([]*models.SpecialServiceRow, error) {
	return s.repo.ListSpecialServices(ctx)
}

// AddSpecialService регистрирует службу вместе со служебным номером.
func (s *DirectoryService) AddSpecialService(ctx context.Context, req models.CreateSpecialServiceRequest) (int, error) {
	return s.repo.CreateSpecialService(ctx, req)
}
