package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sociallearn/index-api/infrastructure/database/postgres"
	"github.com/sociallearn/index-api/internal/domain"
)

const (
	socialMetricsTable = "social_metrics"
)

type MetricRepository interface {
	GetLatestAccountMetrics() ([]*domain.LatestAccountMetric, error)
	CreateMetric(metric *domain.MetricSample) (*domain.MetricSample, error)
	ExistsByAccountAndDate(accountID string, dataDate time.Time) (bool, error)
	BulkInsert(ctx context.Context, samples []*domain.MetricSample) (int, error)
	ListAccountIDs() (map[string]bool, error)
	GetInstitutionMetrics(institutionID, platform string, since time.Time) ([]*domain.InstitutionMetricsByPlatform, error)
	GetPlatformStats() ([]*domain.PlatformStats, error)
	Export(filters domain.MetricExportFilters) ([]*domain.MetricExportRow, error)
}

type metricRepository struct {
	conn *postgres.Connection
}

func NewMetricRepository(conn *postgres.Connection) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

// GetLatestAccountMetrics retorna a amostra mais recente de cada conta,
// enriquecida com instituição e plataforma. É a única consulta de entrada
// do recálculo do ranking.
func (r *metricRepository) GetLatestAccountMetrics() ([]*domain.LatestAccountMetric, error) {
	sqlQuery := `
		SELECT DISTINCT ON (sm.account_id)
			sm.account_id,
			sa.institution_id,
			i.name AS institution_name,
			sa.platform_id,
			p.name AS platform_name,
			sm.followers_count,
			sm.engagement_rate,
			sm.monthly_growth,
			sm.total_engagement,
			sm.data_date
		FROM social_metrics sm
		JOIN social_accounts sa ON sm.account_id = sa.id
		JOIN institutions i ON sa.institution_id = i.id
		JOIN social_platforms p ON sa.platform_id = p.id
		ORDER BY sm.account_id, sm.data_date DESC`

	rows, err := r.conn.Query(sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas mais recentes: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.LatestAccountMetric, 0)
	for rows.Next() {
		metric := &domain.LatestAccountMetric{}
		err := rows.Scan(
			&metric.AccountID,
			&metric.InstitutionID,
			&metric.InstitutionName,
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

func (r *metricRepository) CreateMetric(metric *domain.MetricSample) (*domain.MetricSample, error) {
	sqlQuery, args, err := squirrel.
		Insert(socialMetricsTable).
		Columns(
			"account_id",
			"followers_count",
			"following_count",
			"posts_count",
			"engagement_rate",
			"avg_likes",
			"avg_comments",
			"avg_shares",
			"monthly_growth",
			"total_engagement",
			"data_date",
			"created_by",
		).
		Values(
			metric.AccountID,
			metric.FollowersCount,
			metric.FollowingCount,
			metric.PostsCount,
			metric.EngagementRate,
			metric.AvgLikes,
			metric.AvgComments,
			metric.AvgShares,
			metric.MonthlyGrowth,
			metric.TotalEngagement,
			metric.DataDate,
			metric.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&metric.ID, &metric.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir métrica: %w", err)
	}

	return metric, nil
}

func (r *metricRepository) ExistsByAccountAndDate(accountID string, dataDate time.Time) (bool, error) {
	sqlQuery, args, err := squirrel.
		Select("1").
		From(socialMetricsTable).
		Where(squirrel.Eq{"account_id": accountID, "data_date": dataDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.conn.QueryRow(sqlQuery, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("erro ao verificar métrica existente: %w", err)
	}

	return true, nil
}

// BulkInsert insere as amostras válidas da importação em massa em uma única
// transação. Conflitos de (account_id, data_date) são silenciosamente
// ignorados e contabilizados como pulados pelo chamador, via contagem de
// linhas afetadas.
func (r *metricRepository) BulkInsert(ctx context.Context, samples []*domain.MetricSample) (int, error) {
	inserted := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, sample := range samples {
			sqlQuery, args, err := squirrel.
				Insert(socialMetricsTable).
				Columns(
					"account_id",
					"followers_count",
					"engagement_rate",
					"monthly_growth",
					"total_engagement",
					"data_date",
					"created_by",
				).
				Values(
					sample.AccountID,
					sample.FollowersCount,
					sample.EngagementRate,
					sample.MonthlyGrowth,
					sample.TotalEngagement,
					sample.DataDate,
					sample.CreatedBy,
				).
				Suffix("ON CONFLICT (account_id, data_date) DO NOTHING").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			result, err := tx.Exec(sqlQuery, args...)
			if err != nil {
				return fmt.Errorf("erro ao inserir métrica da importação: %w", err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("erro ao contar linhas inseridas: %w", err)
			}

			inserted += int(affected)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// ListAccountIDs retorna o conjunto de ids de contas conhecidas, usado para
// validar as linhas da importação em massa sem uma consulta por linha
func (r *metricRepository) ListAccountIDs() (map[string]bool, error) {
	sqlQuery, args, err := squirrel.
		Select("id").
		From("social_accounts").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}

		ids[id] = true
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

// GetInstitutionMetrics retorna o histórico de métricas de uma instituição
// agrupado por plataforma, limitado ao período informado
func (r *metricRepository) GetInstitutionMetrics(institutionID, platform string, since time.Time) ([]*domain.InstitutionMetricsByPlatform, error) {
	queryBuilder := squirrel.
		Select(
			"p.name",
			"p.display_name",
			"p.color_hex",
			"sa.handle",
			"sa.url",
			"sm.followers_count",
			"sm.engagement_rate",
			"sm.total_engagement",
			"sm.monthly_growth",
			"sm.data_date",
		).
		From(socialMetricsTable+" sm").
		Join("social_accounts sa ON sm.account_id = sa.id").
		Join("social_platforms p ON sa.platform_id = p.id").
		Where(squirrel.Eq{"sa.institution_id": institutionID}).
		Where(squirrel.GtOrEq{"sm.data_date": since}).
		OrderBy("p.name", "sm.data_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if platform != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"p.name": platform})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	grouped := make([]*domain.InstitutionMetricsByPlatform, 0)
	byPlatform := make(map[string]*domain.InstitutionMetricsByPlatform)

	for rows.Next() {
		info := domain.PlatformInfo{}
		item := &domain.MetricHistoryItem{}
		err := rows.Scan(
			&info.Name,
			&info.DisplayName,
			&info.Color,
			&info.Handle,
			&info.URL,
			&item.FollowersCount,
			&item.EngagementRate,
			&item.TotalEngagement,
			&item.MonthlyGrowth,
			&item.DataDate,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica do histórico: %w", err)
		}

		group, ok := byPlatform[info.Name]
		if !ok {
			group = &domain.InstitutionMetricsByPlatform{
				PlatformInfo: info,
				Metrics:      make([]*domain.MetricHistoryItem, 0),
			}
			byPlatform[info.Name] = group
			grouped = append(grouped, group)
		}

		group.Metrics = append(group.Metrics, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return grouped, nil
}

func (r *metricRepository) GetPlatformStats() ([]*domain.PlatformStats, error) {
	sqlQuery := `
		SELECT
			p.display_name,
			COUNT(DISTINCT sa.id) AS account_count,
			COALESCE(AVG(sm.followers_count), 0)::bigint AS avg_followers,
			COALESCE(AVG(sm.engagement_rate), 0) AS avg_engagement_rate,
			COALESCE(SUM(sm.total_engagement), 0) AS total_engagement
		FROM social_platforms p
		LEFT JOIN social_accounts sa ON p.id = sa.platform_id
		LEFT JOIN social_metrics sm ON sa.id = sm.account_id
			AND sm.data_date = (
				SELECT MAX(data_date) FROM social_metrics WHERE account_id = sa.id
			)
		GROUP BY p.id, p.display_name
		ORDER BY p.display_name`

	rows, err := r.conn.Query(sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.PlatformStats, 0)
	for rows.Next() {
		stat := &domain.PlatformStats{}
		err := rows.Scan(
			&stat.Platform,
			&stat.AccountCount,
			&stat.AvgFollowers,
			&stat.AvgEngagementRate,
			&stat.TotalEngagement,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear estatística da plataforma: %w", err)
		}

		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

func (r *metricRepository) Export(filters domain.MetricExportFilters) ([]*domain.MetricExportRow, error) {
	queryBuilder := squirrel.
		Select(
			"i.name",
			"p.display_name",
			"sa.handle",
			"sm.followers_count",
			"sm.engagement_rate",
			"sm.total_engagement",
			"sm.monthly_growth",
			"sm.data_date",
		).
		From(socialMetricsTable + " sm").
		Join("social_accounts sa ON sm.account_id = sa.id").
		Join("institutions i ON sa.institution_id = i.id").
		Join("social_platforms p ON sa.platform_id = p.id").
		OrderBy("i.name", "p.name", "sm.data_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.InstitutionID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sa.institution_id": filters.InstitutionID})
	}

	if filters.Platform != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"p.name": filters.Platform})
	}

	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"sm.data_date": *filters.StartDate})
	}

	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"sm.data_date": *filters.EndDate})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	export := make([]*domain.MetricExportRow, 0)
	for rows.Next() {
		row := &domain.MetricExportRow{}
		err := rows.Scan(
			&row.InstitutionName,
			&row.Platform,
			&row.Handle,
			&row.FollowersCount,
			&row.EngagementRate,
			&row.TotalEngagement,
			&row.MonthlyGrowth,
			&row.DataDate,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha da exportação: %w", err)
		}

		export = append(export, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return export, nil
}
