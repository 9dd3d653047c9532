package services_test

import (
	"context"
	"errors"
	"testing"

	customjwt "github.com/magabrotheeeer/telecom-registry/internal/lib/jwt"
	"github.com/magabrotheeeer/telecom-registry/internal/lib/password"
	"github.com/magabrotheeeer/telecom-registry/internal/models"
	services "github.com/magabrotheeeer/telecom-registry/internal/services/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) CreateRegistrationRequest(ctx context.Context, login, passwordHash string) (int, error) {
	args := m.Called(ctx, login, passwordHash)
	return args.Int(0), args.Error(1)
}

// Мок для jwt.Maker
type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateToken(login, role string) (string, error) {
	args := m.Called(login, role)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string) (*customjwt.CustomClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.Hash("secret123")
	assert.NoError(t, err)

	tests := []struct {
		name       string
		login      string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantRole   models.Role
		wantErr    error
	}{
		{
			name:     "successful login",
			login:    "operator1",
			password: "secret123",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByLogin", mock.Anything, "operator1").
					Return(&models.User{Login: "operator1", PasswordHash: hashed, Role: models.RoleOperator}, nil).Once()
				j.On("GenerateToken", "operator1", "operator").
					Return("signed-token", nil).Once()
			},
			wantToken: "signed-token",
			wantRole:  models.RoleOperator,
		},
		{
			name:     "unknown login",
			login:    "ghost",
			password: "secret123",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByLogin", mock.Anything, "ghost").
					Return(nil, nil).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			login:    "operator1",
			password: "not-the-password",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByLogin", mock.Anything, "operator1").
					Return(&models.User{Login: "operator1", PasswordHash: hashed, Role: models.RoleOperator}, nil).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "repository failure",
			login:    "operator1",
			password: "secret123",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByLogin", mock.Anything, "operator1").
					Return(nil, errors.New("db down")).Once()
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			maker := new(JwtMakerMock)
			tt.setupMocks(repo, maker)

			svc := services.NewAuthService(repo, maker)
			token, role, err := svc.Login(context.Background(), tt.login, tt.password)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, tt.wantRole, role)
			}
			repo.AssertExpectations(t)
			maker.AssertExpectations(t)
		})
	}
}

func TestAuthService_SubmitRegistration(t *testing.T) {
	repo := new(UserRepoMock)
	maker := new(JwtMakerMock)
	repo.On("CreateRegistrationRequest", mock.Anything, "newuser", mock.MatchedBy(func(hash string) bool {
		return password.Verify(hash, "pass123") == nil
	})).Return(7, nil).Once()

	svc := services.NewAuthService(repo, maker)
	id, err := svc.SubmitRegistration(context.Background(), "newuser", "pass123")

	assert.NoError(t, err)
	assert.Equal(t, 7, id)
	repo.AssertExpectations(t)
}
