package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sociallearn/index-api/infrastructure/database/postgres"
	"github.com/sociallearn/index-api/internal/domain"
)

const (
	siteSettingsTable = "site_settings"
)

type SettingsRepository interface {
	ListPublic() ([]*domain.Setting, error)
	ListAll() ([]*domain.Setting, error)
	GetByKey(key string) (*domain.Setting, error)
	Create(req domain.CreateSettingRequest) (*domain.Setting, error)
	UpdateByKey(key string, req domain.UpdateSettingRequest) (*domain.Setting, error)
}

type settingsRepository struct {
	conn *postgres.Connection
}

func NewSettingsRepository(conn *postgres.Connection) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

func (r *settingsRepository) ListPublic() ([]*domain.Setting, error) {
	return r.list(true)
}

func (r *settingsRepository) ListAll() ([]*domain.Setting, error) {
	return r.list(false)
}

func (r *settingsRepository) list(onlyPublic bool) ([]*domain.Setting, error) {
	queryBuilder := squirrel.
		Select("id", "setting_key", "setting_value", "setting_type", "description", "is_public", "updated_at").
		From(siteSettingsTable).
		OrderBy("setting_key").
		PlaceholderFormat(squirrel.Dollar)

	if onlyPublic {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"is_public": true})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar configurações: %w", err)
	}
	defer rows.Close()

	settings := make([]*domain.Setting, 0)
	for rows.Next() {
		setting := &domain.Setting{}
		err := rows.Scan(
			&setting.ID,
			&setting.Key,
			&setting.Value,
			&setting.Type,
			&setting.Description,
			&setting.IsPublic,
			&setting.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear configuração: %w", err)
		}

		settings = append(settings, setting)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return settings, nil
}

func (r *settingsRepository) GetByKey(key string) (*domain.Setting, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "setting_key", "setting_value", "setting_type", "description", "is_public", "updated_at").
		From(siteSettingsTable).
		Where(squirrel.Eq{"setting_key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	setting := &domain.Setting{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&setting.ID,
		&setting.Key,
		&setting.Value,
		&setting.Type,
		&setting.Description,
		&setting.IsPublic,
		&setting.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar configuração: %w", err)
	}

	return setting, nil
}

func (r *settingsRepository) Create(req domain.CreateSettingRequest) (*domain.Setting, error) {
	sqlQuery, args, err := squirrel.
		Insert(siteSettingsTable).
		Columns("setting_key", "setting_value", "setting_type", "description", "is_public").
		Values(req.Key, req.Value, req.Type, req.Description, req.IsPublic).
		Suffix("RETURNING id, setting_key, setting_value, setting_type, description, is_public, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	setting := &domain.Setting{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&setting.ID,
		&setting.Key,
		&setting.Value,
		&setting.Type,
		&setting.Description,
		&setting.IsPublic,
		&setting.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar configuração: %w", err)
	}

	return setting, nil
}

func (r *settingsRepository) UpdateByKey(key string, req domain.UpdateSettingRequest) (*domain.Setting, error) {
	queryBuilder := squirrel.
		Update(siteSettingsTable).
		Set("setting_value", req.Value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"setting_key": key}).
		Suffix("RETURNING id, setting_key, setting_value, setting_type, description, is_public, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	if req.Type != nil {
		queryBuilder = queryBuilder.Set("setting_type", *req.Type)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	setting := &domain.Setting{}
	err = r.conn.QueryRow(sqlQuery, args...).Scan(
		&setting.ID,
		&setting.Key,
		&setting.Value,
		&setting.Type,
		&setting.Description,
		&setting.IsPublic,
		&setting.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar configuração: %w", err)
	}

	return setting, nil
}
