package domain

import "time"

// RankingType distingue o ranking por plataforma do ranking combinado
type RankingType string

const (
	RankingTypePlatformSpecific RankingType = "platform_specific"
	RankingTypeCombined         RankingType = "combined"
)

// RankingRow é uma linha de um snapshot de ranking. As linhas de uma mesma
// calculation_date são sempre substituídas em bloco, nunca parcialmente.
// Para o tipo combinado, PlatformID é nulo e os sub-scores são zero.
type RankingRow struct {
	ID              int         `json:"id,omitempty"`
	InstitutionID   string      `json:"institution_id"`
	PlatformID      *int        `json:"platform_id"`
	RankingType     RankingType `json:"ranking_type"`
	RankPosition    int         `json:"rank_position"`
	Score           float64     `json:"score"`
	FollowerScore   float64     `json:"follower_score"`
	EngagementScore float64     `json:"engagement_score"`
	GrowthScore     float64     `json:"growth_score"`
	CalculationDate time.Time   `json:"calculation_date"`
	IsPublished     bool        `json:"is_published"`
}

// RecalculationResult é o retorno da operação de recálculo: apenas
// contagens para observabilidade, nunca as linhas em si
type RecalculationResult struct {
	CalculationDate string `json:"calculation_date"`
	PlatformRows    int    `json:"platform_rows"`
	CombinedRows    int    `json:"combined_rows"`
	Published       bool   `json:"published"`
}

// CombinedRankingEntry é uma linha do ranking combinado público, já
// enriquecida com os dados da instituição
type CombinedRankingEntry struct {
	RankPosition    int     `json:"rank_position"`
	Score           float64 `json:"score"`
	FollowerScore   float64 `json:"follower_score"`
	EngagementScore float64 `json:"engagement_score"`
	GrowthScore     float64 `json:"growth_score"`
	InstitutionID   string  `json:"id"`
	Name            string  `json:"name"`
	ShortName       *string `json:"short_name"`
	LogoURL         *string `json:"logo_url"`
	Website         *string `json:"website"`
	Country         *string `json:"country"`
	CountryCode     *string `json:"country_code"`
	InstitutionType *string `json:"institution_type"`
}

// PlatformRankingEntry é uma linha do ranking público de uma plataforma,
// com a métrica mais recente da conta correspondente
type PlatformRankingEntry struct {
	RankPosition    int      `json:"rank_position"`
	Score           float64  `json:"score"`
	InstitutionID   string   `json:"id"`
	Name            string   `json:"name"`
	ShortName       *string  `json:"short_name"`
	LogoURL         *string  `json:"logo_url"`
	Country         *string  `json:"country"`
	FollowersCount  *int64   `json:"followers_count"`
	EngagementRate  *float64 `json:"engagement_rate"`
	TotalEngagement *int64   `json:"total_engagement"`
	Handle          *string  `json:"handle"`
	URL             *string  `json:"url"`
}

// TopInstitution é uma entrada do top-N da página inicial
type TopInstitution struct {
	RankPosition  int     `json:"rank_position"`
	Score         float64 `json:"score"`
	InstitutionID string  `json:"id"`
	Name          string  `json:"name"`
	LogoURL       *string `json:"logo_url"`
	Website       *string `json:"website"`
	Country       *string `json:"country"`
	PlatformCount int     `json:"platform_count"`
}

// TrendingInstitution é uma instituição em alta pelo crescimento mensal
type TrendingInstitution struct {
	InstitutionID  string  `json:"id"`
	Name           string  `json:"name"`
	LogoURL        *string `json:"logo_url"`
	Country        *string `json:"country"`
	AvgGrowth      float64 `json:"avg_growth"`
	TotalFollowers int64   `json:"total_followers"`
}

// PreviewEntry é uma linha do preview de recálculo (nada é persistido)
type PreviewEntry struct {
	RankPosition  int     `json:"rank_position"`
	Score         float64 `json:"score"`
	InstitutionID string  `json:"id"`
	Name          string  `json:"name"`
}

// RankingFilters são os filtros da listagem pública do ranking combinado
type RankingFilters struct {
	Country string
	Type    string
	Page    int
	Limit   int
}
