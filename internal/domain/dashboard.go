package domain

import "time"

// DashboardStats alimenta o painel inicial do back office
type DashboardStats struct {
	Overview       DashboardOverview    `json:"overview"`
	Platforms      []*PlatformBreakdown `json:"platforms"`
	RecentActivity []*ActivityEntry     `json:"recent_activity"`
}

type DashboardOverview struct {
	TotalInstitutions int `json:"total_institutions"`
	TotalAccounts     int `json:"total_accounts"`
	RecentMetrics     int `json:"recent_metrics"`
	TotalUsers        int `json:"total_users"`
	PublishedPosts    int `json:"published_posts"`
}

type PlatformBreakdown struct {
	Platform     string `json:"platform"`
	AccountCount int    `json:"account_count"`
	AvgFollowers int64  `json:"avg_followers"`
}

type ActivityEntry struct {
	Type            string    `json:"type"`
	InstitutionName string    `json:"institution_name"`
	Platform        string    `json:"platform"`
	Timestamp       time.Time `json:"timestamp"`
}
