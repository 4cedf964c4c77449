package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sociallearn/index-api/infrastructure/database/postgres"
	"github.com/sociallearn/index-api/internal/domain"
)

const (
	institutionsTable   = "institutions"
	socialAccountsTable = "social_accounts"
)

type InstitutionRepository interface {
	List(filters domain.InstitutionFilters) ([]*domain.Institution, int, error)
	GetByID(id string) (*domain.Institution, error)
	Create(req domain.CreateInstitutionRequest) (*domain.Institution, error)
	Update(id string, req domain.UpdateInstitutionRequest) (*domain.Institution, error)
	ListSocialAccounts(institutionID string) ([]*domain.SocialAccount, error)
	AddSocialAccount(institutionID string, req domain.CreateSocialAccountRequest) (*domain.SocialAccount, error)
	GetLatestMetrics(institutionID string) ([]*domain.LatestAccountMetric, error)
	ListCountries() ([]*domain.Country, error)
	ListInstitutionTypes() ([]*domain.InstitutionType, error)
}

type institutionRepository struct {
	conn *postgres.Connection
}

func NewInstitutionRepository(conn *postgres.Connection) InstitutionRepository {
	return &institutionRepository{
		conn: conn,
	}
}

func (r *institutionRepository) List(filters domain.InstitutionFilters) ([]*domain.Institution, int, error) {
	offset := (filters.Page - 1) * filters.Limit

	queryBuilder := squirrel.
		Select(
			"i.id", "i.name", "i.short_name", "i.website", "i.logo_url",
			"i.founded_year", "i.student_count",
			"c.name AS country", "c.code AS country_code",
			"t.name AS institution_type",
			"COUNT(*) OVER() AS total_count",
		).
		From(institutionsTable+" i").
		LeftJoin("countries c ON i.country_id = c.id").
		LeftJoin("institution_types t ON i.type_id = t.id").
		Where(squirrel.Eq{"i.is_published": true}).
		OrderBy("i.name ASC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	if filters.Country != "" {
		queryBuilder = queryBuilder.Where(squirrel.ILike{"c.name": "%" + filters.Country + "%"})
	}

	if filters.Type != "" {
		queryBuilder = queryBuilder.Where(squirrel.ILike{"t.name": "%" + filters.Type + "%"})
	}

	if filters.Search != "" {
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.ILike{"i.name": "%" + filters.Search + "%"},
			squirrel.ILike{"i.short_name": "%" + filters.Search + "%"},
		})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar instituições: %w", err)
	}
	defer rows.Close()

	institutions := make([]*domain.Institution, 0)
	totalCount := 0

	for rows.Next() {
		institution := &domain.Institution{}
		err := rows.Scan(
			&institution.ID,
			&institution.Name,
			&institution.ShortName,
			&institution.Website,
			&institution.LogoURL,
			&institution.FoundedYear,
			&institution.StudentCount,
			&institution.Country,
			&institution.CountryCode,
			&institution.InstitutionType,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear instituição: %w", err)
		}

		institutions = append(institutions, institution)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return institutions, totalCount, nil
}

func (r *institutionRepository) GetByID(id string) (*domain.Institution, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"i.id", "i.name", "i.short_name", "i.website", "i.logo_url",
			"i.description", "i.founded_year", "i.student_count", "i.staff_count",
			"i.is_verified", "i.created_at", "i.updated_at",
			"c.name AS country", "c.code AS country_code",
			"t.name AS institution_type",
		).
		From(institutionsTable+" i").
		LeftJoin("countries c ON i.country_id = c.id").
		LeftJoin("institution_types t ON i.type_id = t.id").
		Where(squirrel.Eq{"i.id": id, "i.is_published": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	institution := &domain.Institution{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&institution.ID,
		&institution.Name,
		&institution.ShortName,
		&institution.Website,
		&institution.LogoURL,
		&institution.Description,
		&institution.FoundedYear,
		&institution.StudentCount,
		&institution.StaffCount,
		&institution.IsVerified,
		&institution.CreatedAt,
		&institution.UpdatedAt,
		&institution.Country,
		&institution.CountryCode,
		&institution.InstitutionType,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar instituição: %w", err)
	}

	return institution, nil
}

func (r *institutionRepository) Create(req domain.CreateInstitutionRequest) (*domain.Institution, error) {
	id := uuid.New().String()

	sqlQuery, args, err := squirrel.
		Insert(institutionsTable).
		Columns(
			"id", "name", "short_name", "country_id", "type_id",
			"website", "description", "founded_year", "student_count", "staff_count",
		).
		Values(
			id, req.Name, req.ShortName, req.CountryID, req.TypeID,
			req.Website, req.Description, req.FoundedYear, req.StudentCount, req.StaffCount,
		).
		Suffix("RETURNING id, name, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	institution := &domain.Institution{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&institution.ID,
		&institution.Name,
		&institution.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar instituição: %w", err)
	}

	return institution, nil
}

func (r *institutionRepository) Update(id string, req domain.UpdateInstitutionRequest) (*domain.Institution, error) {
	queryBuilder := squirrel.
		Update(institutionsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}

	if req.ShortName != nil {
		queryBuilder = queryBuilder.Set("short_name", *req.ShortName)
	}

	if req.CountryID != nil {
		queryBuilder = queryBuilder.Set("country_id", *req.CountryID)
	}

	if req.TypeID != nil {
		queryBuilder = queryBuilder.Set("type_id", *req.TypeID)
	}

	if req.Website != nil {
		queryBuilder = queryBuilder.Set("website", *req.Website)
	}

	if req.LogoURL != nil {
		queryBuilder = queryBuilder.Set("logo_url", *req.LogoURL)
	}

	if req.Description != nil {
		queryBuilder = queryBuilder.Set("description", *req.Description)
	}

	if req.FoundedYear != nil {
		queryBuilder = queryBuilder.Set("founded_year", *req.FoundedYear)
	}

	if req.StudentCount != nil {
		queryBuilder = queryBuilder.Set("student_count", *req.StudentCount)
	}

	if req.StaffCount != nil {
		queryBuilder = queryBuilder.Set("staff_count", *req.StaffCount)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	institution := &domain.Institution{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&institution.ID,
		&institution.Name,
		&institution.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar instituição: %w", err)
	}

	return institution, nil
}

func (r *institutionRepository) ListSocialAccounts(institutionID string) ([]*domain.SocialAccount, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"sa.id", "sa.institution_id", "sa.platform_id",
			"p.name AS platform_name", "p.display_name",
			"sa.handle", "sa.url", "sa.is_verified", "sa.created_at",
		).
		From(socialAccountsTable+" sa").
		Join("social_platforms p ON sa.platform_id = p.id").
		Where(squirrel.Eq{"sa.institution_id": institutionID}).
		OrderBy("p.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas sociais: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.SocialAccount, 0)
	for rows.Next() {
		account := &domain.SocialAccount{}
		err := rows.Scan(
			&account.ID,
			&account.InstitutionID,
			&account.PlatformID,
			&account.PlatformName,
			&account.DisplayName,
			&account.Handle,
			&account.URL,
			&account.IsVerified,
			&account.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta social: %w", err)
		}

		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

// AddSocialAccount cria a conta de uma instituição em uma plataforma. O par
// (instituição, plataforma) é único; a violação vem do banco como erro de
// unique constraint e é traduzida pelo caso de uso.
func (r *institutionRepository) AddSocialAccount(institutionID string, req domain.CreateSocialAccountRequest) (*domain.SocialAccount, error) {
	id := uuid.New().String()

	sqlQuery, args, err := squirrel.
		Insert(socialAccountsTable).
		Columns("id", "institution_id", "platform_id", "handle", "url", "is_verified").
		Values(id, institutionID, req.PlatformID, req.Handle, req.URL, req.IsVerified).
		Suffix("RETURNING id, institution_id, platform_id, handle, url, is_verified, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	account := &domain.SocialAccount{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&account.ID,
		&account.InstitutionID,
		&account.PlatformID,
		&account.Handle,
		&account.URL,
		&account.IsVerified,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar conta social: %w", err)
	}

	return account, nil
}

// GetLatestMetrics retorna a amostra mais recente de cada conta da
// instituição, para o cartão de resumo do perfil público
func (r *institutionRepository) GetLatestMetrics(institutionID string) ([]*domain.LatestAccountMetric, error) {
	sqlQuery := `
		SELECT DISTINCT ON (sm.account_id)
			sm.account_id,
			sa.institution_id,
			sa.platform_id,
			p.name AS platform_name,
			sm.followers_count,
			sm.engagement_rate,
			sm.monthly_growth,
			sm.total_engagement,
			sm.data_date
		FROM social_metrics sm
		JOIN social_accounts sa ON sm.account_id = sa.id
		JOIN social_platforms p ON sa.platform_id = p.id
		WHERE sa.institution_id = $1
		ORDER BY sm.account_id, sm.data_date DESC`

	rows, err := r.conn.Query(sqlQuery, institutionID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas da instituição: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.LatestAccountMetric, 0)
	for rows.Next() {
		metric := &domain.LatestAccountMetric{}
		err := rows.Scan(
			&metric.AccountID,
			&metric.InstitutionID,
			&metric.PlatformID,
			&metric.PlatformName,
			&metric.FollowersCount,
			&metric.EngagementRate,
			&metric.MonthlyGrowth,
			&metric.TotalEngagement,
			&metric.DataDate,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
		}

		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *institutionRepository) ListCountries() ([]*domain.Country, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "name", "code").
		From("countries").
		OrderBy("name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar países: %w", err)
	}
	defer rows.Close()

	countries := make([]*domain.Country, 0)
	for rows.Next() {
		country := &domain.Country{}
		if err := rows.Scan(&country.ID, &country.Name, &country.Code); err != nil {
			return nil, fmt.Errorf("erro ao escanear país: %w", err)
		}

		countries = append(countries, country)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return countries, nil
}

func (r *institutionRepository) ListInstitutionTypes() ([]*domain.InstitutionType, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "name", "description").
		From("institution_types").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tipos de instituição: %w", err)
	}
	defer rows.Close()

	types := make([]*domain.InstitutionType, 0)
	for rows.Next() {
		institutionType := &domain.InstitutionType{}
		if err := rows.Scan(&institutionType.ID, &institutionType.Name, &institutionType.Description); err != nil {
			return nil, fmt.Errorf("erro ao escanear tipo de instituição: %w", err)
		}

		types = append(types, institutionType)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return types, nil
}

// IsUniqueViolation identifica violação de unicidade do Postgres (23505)
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
