package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IDs dos roles de usuário
const (
	RoleSuperAdmin = 1
	RoleAdmin      = 2
	RoleEditor     = 3
	RoleAnalyst    = 4
)

// Permissões derivadas dos roles
const (
	PermManageUsers        = "manage_users"
	PermManageInstitutions = "manage_institutions"
	PermManageRankings     = "manage_rankings"
	PermManageMetrics      = "manage_metrics"
	PermManageBlog         = "manage_blog"
	PermManageSettings     = "manage_settings"
	PermViewAnalytics      = "view_analytics"
	PermExportData         = "export_data"
)

// PermissionSet é o conjunto de permissões de um principal autenticado
type PermissionSet map[string]bool

// Has verifica se a permissão está presente no conjunto
func (p PermissionSet) Has(permission string) bool {
	return p[permission]
}

var rolePermissions = map[int]PermissionSet{
	RoleSuperAdmin: {
		PermManageUsers:        true,
		PermManageInstitutions: true,
		PermManageRankings:     true,
		PermManageMetrics:      true,
		PermManageBlog:         true,
		PermManageSettings:     true,
		PermViewAnalytics:      true,
		PermExportData:         true,
	},
	RoleAdmin: {
		PermManageInstitutions: true,
		PermManageRankings:     true,
		PermManageMetrics:      true,
		PermManageBlog:         true,
		PermViewAnalytics:      true,
		PermExportData:         true,
	},
	RoleEditor: {
		PermManageInstitutions: true,
		PermManageMetrics:      true,
		PermManageBlog:         true,
	},
	RoleAnalyst: {
		PermViewAnalytics: true,
		PermExportData:    true,
	},
}

// PermissionsForRole retorna o conjunto de permissões derivado do role
func PermissionsForRole(roleID int) PermissionSet {
	perms, ok := rolePermissions[roleID]
	if !ok {
		return PermissionSet{}
	}
	return perms
}

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID     int     `json:"id"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Active *bool   `json:"active"`
	RoleID *int    `json:"role_id"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse devolve o token e o perfil do usuário, incluindo as
// permissões derivadas do role para o front montar a navegação
type LoginResponse struct {
	Token       string   `json:"token"`
	User        *User    `json:"user"`
	Permissions []string `json:"permissions"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// PermissionList retorna as permissões do role como lista ordenável
func PermissionList(roleID int) []string {
	perms := PermissionsForRole(roleID)
	list := make([]string, 0, len(perms))
	for perm := range perms {
		list = append(list, perm)
	}
	return list
}

type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
