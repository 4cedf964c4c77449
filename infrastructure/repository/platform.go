package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sociallearn/index-api/infrastructure/database/postgres"
	"github.com/sociallearn/index-api/internal/domain"
)

const (
	socialPlatformsTable = "social_platforms"
)

type PlatformRepository interface {
	ListPlatforms() ([]*domain.Platform, error)
	ListActivePlatforms() ([]*domain.Platform, error)
	GetByID(id int) (*domain.Platform, error)
	GetByName(name string) (*domain.Platform, error)
	UpdatePlatform(id int, req domain.UpdatePlatformRequest) (*domain.Platform, error)
}

type platformRepository struct {
	conn *postgres.Connection
}

func NewPlatformRepository(conn *postgres.Connection) PlatformRepository {
	return &platformRepository{
		conn: conn,
	}
}

// ListPlatforms lista todas as plataformas com a contagem de contas
// vinculadas, para a tela administrativa de pesos
func (r *platformRepository) ListPlatforms() ([]*domain.Platform, error) {
	sqlQuery := `
		SELECT
			p.id, p.name, p.display_name, p.weight, p.is_active,
			p.color_hex, p.icon_name,
			COUNT(sa.id) AS account_count
		FROM social_platforms p
		LEFT JOIN social_accounts sa ON p.id = sa.platform_id
		GROUP BY p.id
		ORDER BY p.id`

	rows, err := r.conn.Query(sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar plataformas: %w", err)
	}
	defer rows.Close()

	platforms := make([]*domain.Platform, 0)
	for rows.Next() {
		platform := &domain.Platform{}
		err := rows.Scan(
			&platform.ID,
			&platform.Name,
			&platform.DisplayName,
			&platform.Weight,
			&platform.IsActive,
			&platform.ColorHex,
			&platform.IconName,
			&platform.AccountCount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear plataforma: %w", err)
		}

		platforms = append(platforms, platform)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return platforms, nil
}

// ListActivePlatforms retorna apenas as plataformas ativas, usadas na
// composição do ranking combinado
func (r *platformRepository) ListActivePlatforms() ([]*domain.Platform, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "name", "display_name", "weight", "is_active", "color_hex", "icon_name").
		From(socialPlatformsTable).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar plataformas ativas: %w", err)
	}
	defer rows.Close()

	platforms := make([]*domain.Platform, 0)
	for rows.Next() {
		platform := &domain.Platform{}
		err := rows.Scan(
			&platform.ID,
			&platform.Name,
			&platform.DisplayName,
			&platform.Weight,
			&platform.IsActive,
			&platform.ColorHex,
			&platform.IconName,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear plataforma: %w", err)
		}

		platforms = append(platforms, platform)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return platforms, nil
}

func (r *platformRepository) GetByID(id int) (*domain.Platform, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "name", "display_name", "weight", "is_active", "color_hex", "icon_name").
		From(socialPlatformsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	platform := &domain.Platform{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&platform.ID,
		&platform.Name,
		&platform.DisplayName,
		&platform.Weight,
		&platform.IsActive,
		&platform.ColorHex,
		&platform.IconName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar plataforma: %w", err)
	}

	return platform, nil
}

func (r *platformRepository) GetByName(name string) (*domain.Platform, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "name", "display_name", "weight", "is_active", "color_hex", "icon_name").
		From(socialPlatformsTable).
		Where(squirrel.Eq{"name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	platform := &domain.Platform{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&platform.ID,
		&platform.Name,
		&platform.DisplayName,
		&platform.Weight,
		&platform.IsActive,
		&platform.ColorHex,
		&platform.IconName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar plataforma: %w", err)
	}

	return platform, nil
}

func (r *platformRepository) UpdatePlatform(id int, req domain.UpdatePlatformRequest) (*domain.Platform, error) {
	queryBuilder := squirrel.
		Update(socialPlatformsTable).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, display_name, weight, is_active, color_hex, icon_name").
		PlaceholderFormat(squirrel.Dollar)

	if req.Weight != nil {
		queryBuilder = queryBuilder.Set("weight", *req.Weight)
	}

	if req.IsActive != nil {
		queryBuilder = queryBuilder.Set("is_active", *req.IsActive)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	platform := &domain.Platform{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&platform.ID,
		&platform.Name,
		&platform.DisplayName,
		&platform.Weight,
		&platform.IsActive,
		&platform.ColorHex,
		&platform.IconName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar plataforma: %w", err)
	}

	return platform, nil
}
