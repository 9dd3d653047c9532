// Package services содержит логику бизнес-уровня для аутентификации
// и подачи заявок на доступ.
package services

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/telecom-registry/internal/lib/jwt"
	"github.com/magabrotheeeer/telecom-registry/internal/lib/password"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
)

// ErrInvalidCredentials возвращается при неверном логине или пароле.
// Обработчик не различает эти случаи, чтобы не подсказывать перебором.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями
// и заявками на регистрацию.
type UserRepository interface {
	// GetUserByLogin возвращает пользователя по логину, nil если его нет.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)

	// CreateRegistrationRequest сохраняет заявку гостя и возвращает её ID.
	CreateRegistrationRequest(ctx context.Context, login, passwordHash string) (int, error)
}

// AuthService отвечает за вход и подачу заявок на регистрацию.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Login проверяет пароль пользователя и генерирует JWT с логином и ролью.
func (s *AuthService) Login(ctx context.Context, login, rawPassword string) (token string, role models.Role, err error) {
	user, err := s.users.GetUserByLogin(ctx, login)
	if err != nil {
		return "", models.RoleGuest, err
	}
	if user == nil {
		return "", models.RoleGuest, ErrInvalidCredentials
	}
	if err := password.Verify(user.PasswordHash, rawPassword); err != nil {
		return "", models.RoleGuest, ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.Login, user.Role.String())
	if err != nil {
		return "", models.RoleGuest, err
	}
	return token, user.Role, nil
}

// SubmitRegistration хэширует пароль и сохраняет заявку гостя.
// Учётная запись появится только после одобрения администратором.
func (s *AuthService) SubmitRegistration(ctx context.Context, login, rawPassword string) (int, error) {
	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return 0, err
	}
	return s.users.CreateRegistrationRequest(ctx, login, hashed)
}
