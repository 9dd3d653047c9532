// Package services содержит административную логику управления
// учётными записями и заявками на регистрацию.
package services

import (
	"context"

	"github.com/magabrotheeeer/telecom-registry/internal/lib/password"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// AdminRepository описывает контракт хранилища для администрирования.
type AdminRepository interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	CreateUser(ctx context.Context, login, passwordHash string, role models.Role) (string, error)
	DeleteUser(ctx context.Context, uid string) (int, error)
	UpdateUserRole(ctx context.Context, uid string, role models.Role) (int, error)

	ListRegistrationRequests(ctx context.Context) ([]*models.RegistrationRequest, error)
	ApproveRegistrationRequest(ctx context.Context, id int) (bool, error)
	RejectRegistrationRequest(ctx context.Context, id int) (int, error)
}

// UserAdminService реализует операции администратора над пользователями.
type UserAdminService struct {
	repo AdminRepository
}

// NewUserAdminService создает новый экземпляр UserAdminService.
func NewUserAdminService(repo AdminRepository) *UserAdminService {
	return &UserAdminService{repo: repo}
}

// ListUsers возвращает все учётные записи.
func (s *UserAdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// CreateUser создаёт пользователя напрямую, минуя заявку.
func (s *UserAdminService) CreateUser(ctx context.Context, req models.CreateUserRequest) (string, error) {
	hashed, err := password.Hash(req.Password)
	if err != nil {
		return "", err
	}
	return s.repo.CreateUser(ctx, req.Login, hashed, models.ParseRole(req.Role))
}

// DeleteUser удаляет учётную запись, возвращает число удалённых строк.
func (s *UserAdminService) DeleteUser(ctx context.Context, uid string) (int, error) {
	return s.repo.DeleteUser(ctx, uid)
}

// UpdateUserRole меняет роль пользователя.
func (s *UserAdminService) UpdateUserRole(ctx context.Context, uid string, role string) (int, error) {
	return s.repo.UpdateUserRole(ctx, uid, models.ParseRole(role))
}

// ListRegistrationRequests возвращает заявки на регистрацию,
// новые первыми.
func (s *UserAdminService) ListRegistrationRequests(ctx context.Context) ([]*models.RegistrationRequest, error) {
	return s.repo.ListRegistrationRequests(ctx)
}

// ApproveRegistrationRequest одобряет заявку: создаёт пользователя
// с ролью user и помечает заявку. false — заявки с таким id нет.
func (s *UserAdminService) ApproveRegistrationRequest(ctx context.Context, id int) (bool, error) {
	return s.repo.ApproveRegistrationRequest(ctx, id)
}

// RejectRegistrationRequest отклоняет заявку без создания пользователя.
func (s *UserAdminService) RejectRegistrationRequest(ctx context.Context, id int) (int, error) {
	return s.repo.RejectRegistrationRequest(ctx, id)
}
