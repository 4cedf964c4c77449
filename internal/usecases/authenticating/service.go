// Package authenticating cuida de autenticação, tokens e gestão de usuários
package authenticating

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sociallearn/index-api/infrastructure/repository"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL é a validade do token de acesso
const tokenTTL = 24 * time.Hour

const minPasswordLength = 8

type Authenticator interface {
	CreateUser(req domain.CreateUserRequest) (*domain.User, error)
	LoginUser(req domain.LoginRequest) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ChangePassword(userID int, req domain.ChangePasswordRequest) error
	GetUser(userID int) (*domain.User, error)
	ListUsers() ([]*domain.User, error)
	UpdateUser(userID int, req domain.UpdateUserRequest) (*domain.User, error)
}

type authenticatorService struct {
	userRepository repository.UserRepository
	secretKey      []byte
}

func NewAuthenticatorService(userRepository repository.UserRepository, secretKey string) Authenticator {
	return &authenticatorService{
		userRepository: userRepository,
		secretKey:      []byte(secretKey),
	}
}

// CreateUser registra um novo usuário com a senha já em hash. O role
// informado precisa existir; sem role, o usuário nasce como analista.
func (s *authenticatorService) CreateUser(req domain.CreateUserRequest) (*domain.User, error) {
	if req.Name == "" || req.Email == "" {
		return nil, ErrMissingRequiredData
	}

	if !strings.Contains(req.Email, "@") {
		return nil, ErrInvalidEmail
	}

	if len(req.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	if req.RoleID == 0 {
		req.RoleID = domain.RoleAnalyst
	}

	if req.RoleID < domain.RoleSuperAdmin || req.RoleID > domain.RoleAnalyst {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		RoleID:       req.RoleID,
		Active:       true,
	}

	created, err := s.userRepository.CreateUser(user)
	if err != nil {
		return nil, err
	}

	log.L.WithField("user_id", created.ID).Info("Usuário criado")

	return created, nil
}

// LoginUser autentica por email e senha e emite um token com validade de
// 24 horas. Usuários desativados não conseguem entrar mesmo com a senha
// correta.
func (s *authenticatorService) LoginUser(req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		return nil, ErrUserDisabled
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepository.UpdateLastLogin(user.ID); err != nil {
		// Falha ao carimbar o login não impede a autenticação
		log.L.WithError(err).Warn("Falha ao registrar último login")
	}

	permissions := domain.PermissionList(user.RoleID)
	sort.Strings(permissions)

	return &domain.LoginResponse{
		Token:       token,
		User:        user,
		Permissions: permissions,
	}, nil
}

func (s *authenticatorService) generateToken(user *domain.User) (string, error) {
	now := time.Now()

	claims := &domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secretKey)
}

// ValidateToken verifica a assinatura e a validade do token e devolve as
// claims do usuário
func (s *authenticatorService) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *authenticatorService) ChangePassword(userID int, req domain.ChangePasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return err
	}

	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepository.UpdatePassword(userID, string(hash))
}

func (s *authenticatorService) GetUser(userID int) (*domain.User, error) {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

func (s *authenticatorService) ListUsers() ([]*domain.User, error) {
	return s.userRepository.ListUsers()
}

func (s *authenticatorService) UpdateUser(userID int, req domain.UpdateUserRequest) (*domain.User, error) {
	if req.RoleID != nil && (*req.RoleID < domain.RoleSuperAdmin || *req.RoleID > domain.RoleAnalyst) {
		return nil, ErrInvalidRole
	}

	user, err := s.userRepository.UpdateUser(userID, req)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
