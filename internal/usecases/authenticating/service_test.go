package authenticating

import (
	"testing"

	"github.com/sociallearn/index-api/infrastructure/repository/mocks"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "segredo-de-teste"

func newAuthWithMock(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	return NewAuthenticatorService(userRepo, testSecret), userRepo
}

func hashOf(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCreateUser(t *testing.T) {
	service, userRepo := newAuthWithMock(t)

	userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(nil, nil)
	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, "ana@exemplo.com", user.Email)
			assert.Equal(t, domain.RoleEditor, user.RoleID)
			assert.True(t, user.Active)
			assert.NotEqual(t, "senha-muito-boa", user.PasswordHash)
			user.ID = 1
			return user, nil
		})

	user, err := service.CreateUser(domain.CreateUserRequest{
		Name:     "Ana",
		Email:    "Ana@exemplo.com",
		Password: "senha-muito-boa",
		RoleID:   domain.RoleEditor,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.CreateUserRequest
		expected error
	}{
		{
			name:     "sem nome",
			req:      domain.CreateUserRequest{Email: "a@b.com", Password: "12345678"},
			expected: ErrMissingRequiredData,
		},
		{
			name:     "email inválido",
			req:      domain.CreateUserRequest{Name: "Ana", Email: "sem-arroba", Password: "12345678"},
			expected: ErrInvalidEmail,
		},
		{
			name:     "senha curta",
			req:      domain.CreateUserRequest{Name: "Ana", Email: "a@b.com", Password: "1234"},
			expected: ErrWeakPassword,
		},
		{
			name:     "role desconhecido",
			req:      domain.CreateUserRequest{Name: "Ana", Email: "a@b.com", Password: "12345678", RoleID: 99},
			expected: ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newAuthWithMock(t)

			_, err := service.CreateUser(tt.req)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	service, userRepo := newAuthWithMock(t)

	userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(&domain.User{ID: 1}, nil)

	_, err := service.CreateUser(domain.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@exemplo.com",
		Password: "senha-muito-boa",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUser(t *testing.T) {
	service, userRepo := newAuthWithMock(t)

	user := &domain.User{
		ID:           1,
		Name:         "Ana",
		Email:        "ana@exemplo.com",
		PasswordHash: hashOf(t, "senha-muito-boa"),
		RoleID:       domain.RoleAdmin,
		Active:       true,
	}

	userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(user, nil)
	userRepo.EXPECT().UpdateLastLogin(1).Return(nil)

	response, err := service.LoginUser(domain.LoginRequest{
		Email:    "Ana@exemplo.com",
		Password: "senha-muito-boa",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, 1, response.User.ID)
	assert.Contains(t, response.Permissions, domain.PermManageInstitutions)
	assert.NotContains(t, response.Permissions, domain.PermManageUsers)

	// O token emitido precisa passar na própria validação
	claims, err := service.ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
}

func TestLoginUserWrongPassword(t *testing.T) {
	service, userRepo := newAuthWithMock(t)

	userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(&domain.User{
		ID:           1,
		PasswordHash: hashOf(t, "senha-certa"),
		Active:       true,
	}, nil)

	_, err := service.LoginUser(domain.LoginRequest{
		Email:    "ana@exemplo.com",
		Password: "senha-errada",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserUnknownEmail(t *testing.T) {
	service, userRepo := newAuthWithMock(t)

	userRepo.EXPECT().GetUserByEmail("ninguem@exemplo.com").Return(nil, nil)

	_, err := service.LoginUser(domain.LoginRequest{
		Email:    "ninguem@exemplo.com",
		Password: "qualquer",
	})

	// Mesmo erro de senha errada, para não revelar quais emails existem
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserDisabled(t *testing.T) {
	service, userRepo := newAuthWithMock(t)

	userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(&domain.User{
		ID:           1,
		PasswordHash: hashOf(t, "senha-muito-boa"),
		Active:       false,
	}, nil)

	_, err := service.LoginUser(domain.LoginRequest{
		Email:    "ana@exemplo.com",
		Password: "senha-muito-boa",
	})

	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestValidateTokenGarbage(t *testing.T) {
	service, _ := newAuthWithMock(t)

	_, err := service.ValidateToken("nem-um-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service, userRepo := newAuthWithMock(t)

	userRepo.EXPECT().GetUserByEmail("ana@exemplo.com").Return(&domain.User{
		ID:           1,
		PasswordHash: hashOf(t, "senha-muito-boa"),
		Active:       true,
	}, nil)
	userRepo.EXPECT().UpdateLastLogin(1).Return(nil)

	response, err := service.LoginUser(domain.LoginRequest{
		Email:    "ana@exemplo.com",
		Password: "senha-muito-boa",
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	other := NewAuthenticatorService(mocks.NewMockUserRepository(ctrl), "outro-segredo")

	_, err = other.ValidateToken(response.Token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	service, userRepo := newAuthWithMock(t)

	userRepo.EXPECT().GetUserByID(1).Return(&domain.User{
		ID:           1,
		PasswordHash: hashOf(t, "senha-antiga-ok"),
	}, nil)
	userRepo.EXPECT().
		UpdatePassword(1, gomock.Any()).
		DoAndReturn(func(_ int, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("senha-nova-melhor")))
			return nil
		})

	err := service.ChangePassword(1, domain.ChangePasswordRequest{
		CurrentPassword: "senha-antiga-ok",
		NewPassword:     "senha-nova-melhor",
	})

	require.NoError(t, err)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	service, userRepo := newAuthWithMock(t)

	userRepo.EXPECT().GetUserByID(1).Return(&domain.User{
		ID:           1,
		PasswordHash: hashOf(t, "senha-antiga-ok"),
	}, nil)

	err := service.ChangePassword(1, domain.ChangePasswordRequest{
		CurrentPassword: "senha-errada",
		NewPassword:     "senha-nova-melhor",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
