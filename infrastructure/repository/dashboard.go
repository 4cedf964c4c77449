package repository

import (
	"fmt"

	"github.com/sociallearn/index-api/infrastructure/database/postgres"
	"github.com/sociallearn/index-api/internal/domain"
)

type DashboardRepository interface {
	GetStats() (*domain.DashboardStats, error)
}

type dashboardRepository struct {
	conn *postgres.Connection
}

func NewDashboardRepository(conn *postgres.Connection) DashboardRepository {
	return &dashboardRepository{
		conn: conn,
	}
}

// GetStats monta o painel inicial do back office: contagens gerais,
// distribuição por plataforma e as últimas métricas registradas
func (r *dashboardRepository) GetStats() (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	overviewQuery := `
		SELECT
			(SELECT COUNT(*) FROM institutions) AS total_institutions,
			(SELECT COUNT(*) FROM social_accounts) AS total_accounts,
			(SELECT COUNT(*) FROM social_metrics WHERE created_at >= NOW() - INTERVAL '7 days') AS recent_metrics,
			(SELECT COUNT(*) FROM users WHERE is_active = true) AS total_users,
			(SELECT COUNT(*) FROM blog_posts WHERE status = 'published') AS published_posts`

	err := r.conn.QueryRow(overviewQuery).Scan(
		&stats.Overview.TotalInstitutions,
		&stats.Overview.TotalAccounts,
		&stats.Overview.RecentMetrics,
		&stats.Overview.TotalUsers,
		&stats.Overview.PublishedPosts,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar visão geral: %w", err)
	}

	platformsQuery := `
		SELECT
			p.display_name,
			COUNT(sa.id) AS account_count,
			COALESCE(AVG(sm.followers_count), 0)::bigint AS avg_followers
		FROM social_platforms p
		LEFT JOIN social_accounts sa ON p.id = sa.platform_id
		LEFT JOIN social_metrics sm ON sa.id = sm.account_id
			AND sm.data_date = (
				SELECT MAX(data_date) FROM social_metrics WHERE account_id = sa.id
			)
		GROUP BY p.id, p.display_name
		ORDER BY account_count DESC`

	rows, err := r.conn.Query(platformsQuery)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar distribuição por plataforma: %w", err)
	}
	defer rows.Close()

	stats.Platforms = make([]*domain.PlatformBreakdown, 0)
	for rows.Next() {
		breakdown := &domain.PlatformBreakdown{}
		if err := rows.Scan(&breakdown.Platform, &breakdown.AccountCount, &breakdown.AvgFollowers); err != nil {
			return nil, fmt.Errorf("erro ao escanear distribuição: %w", err)
		}

		stats.Platforms = append(stats.Platforms, breakdown)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	activityQuery := `
		SELECT
			'metric' AS type,
			i.name AS institution_name,
			p.display_name AS platform,
			sm.created_at
		FROM social_metrics sm
		JOIN social_accounts sa ON sm.account_id = sa.id
		JOIN institutions i ON sa.institution_id = i.id
		JOIN social_platforms p ON sa.platform_id = p.id
		ORDER BY sm.created_at DESC
		LIMIT 10`

	activityRows, err := r.conn.Query(activityQuery)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar atividade recente: %w", err)
	}
	defer activityRows.Close()

	stats.RecentActivity = make([]*domain.ActivityEntry, 0)
	for activityRows.Next() {
		entry := &domain.ActivityEntry{}
		err := activityRows.Scan(&entry.Type, &entry.InstitutionName, &entry.Platform, &entry.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade: %w", err)
		}

		stats.RecentActivity = append(stats.RecentActivity, entry)
	}

	if err = activityRows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}
