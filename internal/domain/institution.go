// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type Institution struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	ShortName       *string   `json:"short_name"`
	CountryID       *int      `json:"country_id,omitempty"`
	TypeID          *int      `json:"type_id,omitempty"`
	Country         *string   `json:"country"`
	CountryCode     *string   `json:"country_code"`
	InstitutionType *string   `json:"institution_type"`
	Website         *string   `json:"website"`
	LogoURL         *string   `json:"logo_url"`
	Description     *string   `json:"description,omitempty"`
	FoundedYear     *int      `json:"founded_year"`
	StudentCount    *int      `json:"student_count"`
	StaffCount      *int      `json:"staff_count,omitempty"`
	IsVerified      bool      `json:"is_verified,omitempty"`
	IsPublished     bool      `json:"-"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}

type CreateInstitutionRequest struct {
	Name         string  `json:"name"`
	ShortName    *string `json:"short_name"`
	CountryID    int     `json:"country_id"`
	TypeID       int     `json:"type_id"`
	Website      *string `json:"website"`
	Description  *string `json:"description"`
	FoundedYear  *int    `json:"founded_year"`
	StudentCount *int    `json:"student_count"`
	StaffCount   *int    `json:"staff_count"`
}

type UpdateInstitutionRequest struct {
	Name         *string `json:"name"`
	ShortName    *string `json:"short_name"`
	CountryID    *int    `json:"country_id"`
	TypeID       *int    `json:"type_id"`
	Website      *string `json:"website"`
	LogoURL      *string `json:"logo_url"`
	Description  *string `json:"description"`
	FoundedYear  *int    `json:"founded_year"`
	StudentCount *int    `json:"student_count"`
	StaffCount   *int    `json:"staff_count"`
}

// SocialAccount vincula uma instituição a uma plataforma (único por par)
type SocialAccount struct {
	ID            string    `json:"id"`
	InstitutionID string    `json:"institution_id"`
	PlatformID    int       `json:"platform_id"`
	PlatformName  string    `json:"platform_name,omitempty"`
	DisplayName   string    `json:"display_name,omitempty"`
	Handle        string    `json:"handle"`
	URL           string    `json:"url"`
	IsVerified    bool      `json:"is_verified"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

type CreateSocialAccountRequest struct {
	PlatformID int    `json:"platform_id"`
	Handle     string `json:"handle"`
	URL        string `json:"url"`
	IsVerified bool   `json:"is_verified"`
}

// InstitutionProfile é o perfil completo exibido na página pública
type InstitutionProfile struct {
	Institution
	SocialAccounts []*SocialAccount       `json:"social_accounts"`
	LatestMetrics  []*LatestAccountMetric `json:"latest_metrics"`
}

type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type InstitutionType struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// InstitutionFilters são os filtros opcionais da listagem pública
type InstitutionFilters struct {
	Country string
	Type    string
	Search  string
	Page    int
	Limit   int
}

// Pagination é o envelope de paginação das listagens
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalCount  int `json:"total_count"`
	PerPage     int `json:"per_page"`
}

func NewPagination(page, limit, totalCount int) Pagination {
	totalPages := totalCount / limit
	if totalCount%limit > 0 {
		totalPages++
	}

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		PerPage:     limit,
	}
}
