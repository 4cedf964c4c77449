package domain

import "time"

// MetricSample é um fato imutável: uma medição de uma conta em uma data.
// Nunca é atualizado; amostras mais recentes substituem as anteriores
// apenas no sentido de que o cálculo usa a de maior data_date.
type MetricSample struct {
	ID              int       `json:"id"`
	AccountID       string    `json:"account_id"`
	FollowersCount  int64     `json:"followers_count"`
	FollowingCount  int64     `json:"following_count"`
	PostsCount      int64     `json:"posts_count"`
	EngagementRate  float64   `json:"engagement_rate"`
	AvgLikes        float64   `json:"avg_likes"`
	AvgComments     float64   `json:"avg_comments"`
	AvgShares       float64   `json:"avg_shares"`
	MonthlyGrowth   float64   `json:"monthly_growth"`
	TotalEngagement int64     `json:"total_engagement"`
	DataDate        time.Time `json:"data_date"`
	CreatedBy       int       `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// CreateMetricRequest é o corpo do cadastro manual de uma métrica
type CreateMetricRequest struct {
	AccountID       string  `json:"account_id"`
	FollowersCount  int64   `json:"followers_count"`
	FollowingCount  int64   `json:"following_count"`
	PostsCount      int64   `json:"posts_count"`
	EngagementRate  float64 `json:"engagement_rate"`
	AvgLikes        float64 `json:"avg_likes"`
	AvgComments     float64 `json:"avg_comments"`
	AvgShares       float64 `json:"avg_shares"`
	MonthlyGrowth   float64 `json:"monthly_growth"`
	TotalEngagement int64   `json:"total_engagement"`
	DataDate        string  `json:"data_date"`
}

// LatestAccountMetric é a amostra mais recente de uma conta, já enriquecida
// com a instituição e a plataforma donas da conta. É a entrada do motor de
// recálculo do ranking.
type LatestAccountMetric struct {
	AccountID       string    `json:"account_id"`
	InstitutionID   string    `json:"institution_id"`
	InstitutionName string    `json:"institution_name,omitempty"`
	PlatformID      int       `json:"platform_id"`
	PlatformName    string    `json:"platform_name,omitempty"`
	FollowersCount  int64     `json:"followers_count"`
	EngagementRate  float64   `json:"engagement_rate"`
	MonthlyGrowth   float64   `json:"monthly_growth"`
	TotalEngagement int64     `json:"total_engagement"`
	DataDate        time.Time `json:"data_date"`
}

// InstitutionMetricsByPlatform agrupa o histórico de métricas de uma
// instituição por plataforma, para os gráficos do perfil público
type InstitutionMetricsByPlatform struct {
	PlatformInfo PlatformInfo         `json:"platform_info"`
	Metrics      []*MetricHistoryItem `json:"metrics"`
}

type PlatformInfo struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Color       *string `json:"color"`
	Handle      string  `json:"handle"`
	URL         string  `json:"url"`
}

type MetricHistoryItem struct {
	FollowersCount  int64     `json:"followers_count"`
	EngagementRate  float64   `json:"engagement_rate"`
	TotalEngagement int64     `json:"total_engagement"`
	MonthlyGrowth   float64   `json:"monthly_growth"`
	DataDate        time.Time `json:"data_date"`
}

// PlatformStats são os agregados por plataforma da tela administrativa
type PlatformStats struct {
	Platform          string  `json:"platform"`
	AccountCount      int     `json:"account_count"`
	AvgFollowers      int64   `json:"avg_followers"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	TotalEngagement   int64   `json:"total_engagement"`
}

// MetricExportRow é uma linha da exportação de métricas (csv/json)
type MetricExportRow struct {
	InstitutionName string    `json:"institution_name"`
	Platform        string    `json:"platform"`
	Handle          string    `json:"handle"`
	FollowersCount  int64     `json:"followers_count"`
	EngagementRate  float64   `json:"engagement_rate"`
	TotalEngagement int64     `json:"total_engagement"`
	MonthlyGrowth   float64   `json:"monthly_growth"`
	DataDate        time.Time `json:"data_date"`
}

// MetricExportFilters são os filtros opcionais da exportação
type MetricExportFilters struct {
	InstitutionID string
	Platform      string
	StartDate     *time.Time
	EndDate       *time.Time
}

// BulkImportRowError registra a falha de uma linha individual da importação
// em massa, sem abortar as demais linhas
type BulkImportRowError struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

// BulkImportResult é o resultado da importação em massa de métricas
type BulkImportResult struct {
	TotalRows    int                  `json:"total_rows"`
	SuccessCount int                  `json:"success_count"`
	SkippedCount int                  `json:"skipped_count"`
	ErrorCount   int                  `json:"error_count"`
	Errors       []BulkImportRowError `json:"errors"`
}
