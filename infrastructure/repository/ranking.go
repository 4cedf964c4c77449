// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sociallearn/index-api/infrastructure/database/postgres"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/pkg/utils"
)

const (
	rankingsTable = "rankings"
)

type RankingRepository interface {
	ReplaceSnapshot(ctx context.Context, calculationDate time.Time, rows []*domain.RankingRow) error
	LatestPublishedDate(rankingType domain.RankingType, platformID *int) (*time.Time, error)
	ListCombined(calculationDate time.Time, filters domain.RankingFilters) ([]*domain.CombinedRankingEntry, int, error)
	ListByPlatform(platformID int, calculationDate time.Time, page, limit int) ([]*domain.PlatformRankingEntry, int, error)
	TopCombined(calculationDate time.Time, limit int) ([]*domain.TopInstitution, error)
	Trending(limit int) ([]*domain.TrendingInstitution, error)
}

type rankingRepository struct {
	conn *postgres.Connection
}

func NewRankingRepository(conn *postgres.Connection) RankingRepository {
	return &rankingRepository{
		conn: conn,
	}
}

// ReplaceSnapshot substitui atomicamente o snapshot de uma data de cálculo:
// apaga todas as linhas existentes da data (ambos os tipos) e insere as
// novas na mesma transação. Rodar duas vezes com os mesmos dados produz o
// mesmo resultado, nunca duplicatas. Os scores são arredondados para duas
// casas apenas aqui, no momento da persistência.
func (r *rankingRepository) ReplaceSnapshot(ctx context.Context, calculationDate time.Time, rows []*domain.RankingRow) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(rankingsTable).
			Where(squirrel.Eq{"calculation_date": calculationDate}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de remoção do snapshot: %w", err)
		}

		if _, err := tx.Exec(deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover snapshot anterior: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		query := squirrel.StatementBuilder.
			Insert(rankingsTable).
			Columns(
				"institution_id",
				"platform_id",
				"ranking_type",
				"rank_position",
				"score",
				"follower_score",
				"engagement_score",
				"growth_score",
				"calculation_date",
				"is_published",
				"metadata",
			).
			PlaceholderFormat(squirrel.Dollar)

		for _, row := range rows {
			query = query.Values(
				row.InstitutionID,
				row.PlatformID,
				string(row.RankingType),
				row.RankPosition,
				utils.RoundWithTwoDecimalPlace(row.Score),
				utils.RoundWithTwoDecimalPlace(row.FollowerScore),
				utils.RoundWithTwoDecimalPlace(row.EngagementScore),
				utils.RoundWithTwoDecimalPlace(row.GrowthScore),
				calculationDate,
				row.IsPublished,
				"{}",
			)
		}

		insertSQL, insertArgs, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção do snapshot: %w", err)
		}

		if _, err := tx.Exec(insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir snapshot: %w", err)
		}

		return nil
	})
}

// LatestPublishedDate retorna a data de cálculo publicada mais recente para
// o tipo de ranking (e plataforma, quando aplicável), ou nil se não houver
func (r *rankingRepository) LatestPublishedDate(rankingType domain.RankingType, platformID *int) (*time.Time, error) {
	queryBuilder := squirrel.
		Select("MAX(calculation_date)").
		From(rankingsTable).
		Where(squirrel.Eq{"ranking_type": string(rankingType), "is_published": true}).
		PlaceholderFormat(squirrel.Dollar)

	if platformID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"platform_id": *platformID})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest sql.NullTime
	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&latest); err != nil {
		return nil, fmt.Errorf("erro ao buscar última data publicada: %w", err)
	}

	if !latest.Valid {
		return nil, nil
	}

	return &latest.Time, nil
}

func (r *rankingRepository) ListCombined(calculationDate time.Time, filters domain.RankingFilters) ([]*domain.CombinedRankingEntry, int, error) {
	offset := (filters.Page - 1) * filters.Limit

	queryBuilder := squirrel.
		Select(
			"r.rank_position",
			"r.score",
			"r.follower_score",
			"r.engagement_score",
			"r.growth_score",
			"i.id",
			"i.name",
			"i.short_name",
			"i.logo_url",
			"i.website",
			"c.name AS country",
			"c.code AS country_code",
			"t.name AS institution_type",
			"COUNT(*) OVER() AS total_count",
		).
		From(rankingsTable+" r").
		Join("institutions i ON r.institution_id = i.id").
		LeftJoin("countries c ON i.country_id = c.id").
		LeftJoin("institution_types t ON i.type_id = t.id").
		Where(squirrel.Eq{
			"r.ranking_type":     string(domain.RankingTypeCombined),
			"r.is_published":     true,
			"r.calculation_date": calculationDate,
		}).
		OrderBy("r.rank_position ASC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	// Filtros opcionais sempre parametrizados, nunca concatenados
	if filters.Country != "" {
		queryBuilder = queryBuilder.Where(squirrel.ILike{"c.name": "%" + filters.Country + "%"})
	}

	if filters.Type != "" {
		queryBuilder = queryBuilder.Where(squirrel.ILike{"t.name": "%" + filters.Type + "%"})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.CombinedRankingEntry, 0)
	totalCount := 0

	for rows.Next() {
		entry := &domain.CombinedRankingEntry{}
		err := rows.Scan(
			&entry.RankPosition,
			&entry.Score,
			&entry.FollowerScore,
			&entry.EngagementScore,
			&entry.GrowthScore,
			&entry.InstitutionID,
			&entry.Name,
			&entry.ShortName,
			&entry.LogoURL,
			&entry.Website,
			&entry.Country,
			&entry.CountryCode,
			&entry.InstitutionType,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear linha do ranking: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, totalCount, nil
}

func (r *rankingRepository) ListByPlatform(platformID int, calculationDate time.Time, page, limit int) ([]*domain.PlatformRankingEntry, int, error) {
	offset := (page - 1) * limit

	// A métrica exibida é a mais recente até a data do cálculo
	sqlQuery := `
		SELECT
			r.rank_position, r.score,
			i.id, i.name, i.short_name, i.logo_url,
			c.name AS country,
			sm.followers_count, sm.engagement_rate, sm.total_engagement,
			sa.handle, sa.url,
			COUNT(*) OVER() AS total_count
		FROM rankings r
		JOIN institutions i ON r.institution_id = i.id
		LEFT JOIN countries c ON i.country_id = c.id
		LEFT JOIN social_accounts sa ON i.id = sa.institution_id AND sa.platform_id = $1
		LEFT JOIN social_metrics sm ON sa.id = sm.account_id
			AND sm.data_date = (
				SELECT MAX(data_date) FROM social_metrics
				WHERE account_id = sa.id AND data_date <= r.calculation_date
			)
		WHERE r.ranking_type = 'platform_specific'
			AND r.platform_id = $1
			AND r.calculation_date = $2
			AND r.is_published = true
		ORDER BY r.rank_position
		LIMIT $3 OFFSET $4`

	rows, err := r.conn.Query(sqlQuery, platformID, calculationDate, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.PlatformRankingEntry, 0)
	totalCount := 0

	for rows.Next() {
		entry := &domain.PlatformRankingEntry{}
		err := rows.Scan(
			&entry.RankPosition,
			&entry.Score,
			&entry.InstitutionID,
			&entry.Name,
			&entry.ShortName,
			&entry.LogoURL,
			&entry.Country,
			&entry.FollowersCount,
			&entry.EngagementRate,
			&entry.TotalEngagement,
			&entry.Handle,
			&entry.URL,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("erro ao escanear linha do ranking: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, totalCount, nil
}

func (r *rankingRepository) TopCombined(calculationDate time.Time, limit int) ([]*domain.TopInstitution, error) {
	sqlQuery := `
		SELECT
			r.rank_position, r.score,
			i.id, i.name, i.logo_url, i.website,
			c.name AS country,
			(SELECT COUNT(*) FROM social_accounts WHERE institution_id = i.id) AS platform_count
		FROM rankings r
		JOIN institutions i ON r.institution_id = i.id
		LEFT JOIN countries c ON i.country_id = c.id
		WHERE r.ranking_type = 'combined'
			AND r.calculation_date = $1
			AND r.is_published = true
		ORDER BY r.rank_position
		LIMIT $2`

	rows, err := r.conn.Query(sqlQuery, calculationDate, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.TopInstitution, 0)
	for rows.Next() {
		entry := &domain.TopInstitution{}
		err := rows.Scan(
			&entry.RankPosition,
			&entry.Score,
			&entry.InstitutionID,
			&entry.Name,
			&entry.LogoURL,
			&entry.Website,
			&entry.Country,
			&entry.PlatformCount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear instituição do top: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// Trending lista instituições com maior crescimento médio nos últimos 30
// dias, considerando apenas quem tem presença em pelo menos duas plataformas
func (r *rankingRepository) Trending(limit int) ([]*domain.TrendingInstitution, error) {
	sqlQuery := `
		SELECT
			i.id, i.name, i.logo_url,
			c.name AS country,
			AVG(sm.monthly_growth) AS avg_growth,
			SUM(sm.followers_count) AS total_followers
		FROM institutions i
		JOIN social_accounts sa ON i.id = sa.institution_id
		JOIN social_metrics sm ON sa.id = sm.account_id
		LEFT JOIN countries c ON i.country_id = c.id
		WHERE sm.data_date >= CURRENT_DATE - INTERVAL '30 days'
			AND sm.monthly_growth > 0
		GROUP BY i.id, i.name, i.logo_url, c.name
		HAVING COUNT(DISTINCT sa.platform_id) >= 2
		ORDER BY avg_growth DESC
		LIMIT $1`

	rows, err := r.conn.Query(sqlQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.TrendingInstitution, 0)
	for rows.Next() {
		entry := &domain.TrendingInstitution{}
		err := rows.Scan(
			&entry.InstitutionID,
			&entry.Name,
			&entry.LogoURL,
			&entry.Country,
			&entry.AvgGrowth,
			&entry.TotalFollowers,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear instituição em alta: %w", err)
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
