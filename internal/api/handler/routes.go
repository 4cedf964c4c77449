// Package handler contém os handlers HTTP da API
package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sociallearn/index-api/infrastructure/repository"
	"github.com/sociallearn/index-api/internal/api/handler/router"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/internal/usecases/authenticating"
	"github.com/sociallearn/index-api/internal/usecases/blogging"
	"github.com/sociallearn/index-api/internal/usecases/institution"
	"github.com/sociallearn/index-api/internal/usecases/media"
	"github.com/sociallearn/index-api/internal/usecases/metricsimport"
	"github.com/sociallearn/index-api/internal/usecases/ranking"
	"github.com/sociallearn/index-api/internal/usecases/sitesettings"
	"github.com/sociallearn/index-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/auth/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/auth/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SuperAdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SuperAdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SuperAdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.SuperAdminOnly()},
		},
	}
}

func Institutions(service institution.Institutioner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/institutions",
			Method:  http.MethodGet,
			Handler: ListInstitutions(service),
		},
		{
			Path:    "/v1/institutions/:id",
			Method:  http.MethodGet,
			Handler: GetInstitutionProfile(service),
		},
		{
			Path:        "/v1/institutions",
			Method:      http.MethodPost,
			Handler:     CreateInstitution(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageInstitutions)},
		},
		{
			Path:        "/v1/institutions/:id",
			Method:      http.MethodPut,
			Handler:     UpdateInstitution(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageInstitutions)},
		},
		{
			Path:        "/v1/institutions/:id/accounts",
			Method:      http.MethodPost,
			Handler:     AddSocialAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageInstitutions)},
		},
		{
			Path:    "/v1/countries",
			Method:  http.MethodGet,
			Handler: ListCountries(service),
		},
		{
			Path:    "/v1/institution-types",
			Method:  http.MethodGet,
			Handler: ListInstitutionTypes(service),
		},
	}
}

func Metrics(service metricsimport.Importer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/institution/:id",
			Method:  http.MethodGet,
			Handler: GetInstitutionMetrics(service),
		},
		{
			Path:        "/v1/metrics",
			Method:      http.MethodPost,
			Handler:     AddMetric(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageMetrics)},
		},
		{
			Path:        "/v1/metrics/bulk-import",
			Method:      http.MethodPost,
			Handler:     BulkImportMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageMetrics)},
		},
		{
			Path:        "/v1/metrics/stats/platforms",
			Method:      http.MethodGet,
			Handler:     GetPlatformStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermViewAnalytics)},
		},
		{
			Path:        "/v1/metrics/export",
			Method:      http.MethodGet,
			Handler:     ExportMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermExportData)},
		},
	}
}

func Rankings(service ranking.Ranker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rankings/combined",
			Method:  http.MethodGet,
			Handler: GetCombinedRanking(service),
		},
		{
			Path:    "/v1/rankings/platform/:platform",
			Method:  http.MethodGet,
			Handler: GetPlatformRanking(service),
		},
		{
			Path:    "/v1/rankings/top/homepage",
			Method:  http.MethodGet,
			Handler: GetTopInstitutions(service),
		},
		{
			Path:    "/v1/rankings/trending",
			Method:  http.MethodGet,
			Handler: GetTrending(service),
		},
		{
			Path:        "/v1/rankings/recalculate",
			Method:      http.MethodPost,
			Handler:     RecalculateRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageRankings)},
		},
		{
			Path:        "/v1/rankings/preview",
			Method:      http.MethodGet,
			Handler:     PreviewRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageRankings)},
		},
	}
}

func Platforms(platformRepo repository.PlatformRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/platforms",
			Method:      http.MethodGet,
			Handler:     ListPlatforms(platformRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/platforms/:id",
			Method:      http.MethodPut,
			Handler:     UpdatePlatform(platformRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageRankings)},
		},
	}
}

func Blog(service blogging.Blogger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/blog",
			Method:  http.MethodGet,
			Handler: ListBlogPosts(service),
		},
		{
			Path:    "/v1/blog/:slug",
			Method:  http.MethodGet,
			Handler: GetBlogPost(service),
		},
		{
			Path:        "/v1/admin/blog",
			Method:      http.MethodGet,
			Handler:     ListAllBlogPosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageBlog)},
		},
		{
			Path:        "/v1/admin/blog",
			Method:      http.MethodPost,
			Handler:     CreateBlogPost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageBlog)},
		},
		{
			Path:        "/v1/admin/blog/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBlogPost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageBlog)},
		},
		{
			Path:        "/v1/admin/blog/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBlogPost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageBlog)},
		},
	}
}

func SiteSettings(service sitesettings.Settings) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings/public",
			Method:  http.MethodGet,
			Handler: ListPublicSettings(service),
		},
		{
			Path:        "/v1/settings",
			Method:      http.MethodGet,
			Handler:     ListAllSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageSettings)},
		},
		{
			Path:        "/v1/settings",
			Method:      http.MethodPost,
			Handler:     CreateSetting(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageSettings)},
		},
		{
			Path:        "/v1/settings/:key",
			Method:      http.MethodPut,
			Handler:     UpdateSetting(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePermission(domain.PermManageSettings)},
		},
	}
}

func Uploads(service media.Uploader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/upload/image",
			Method:      http.MethodPost,
			Handler:     UploadImage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.EditorOrAbove()},
		},
	}
}

func Dashboard(dashboardRepo repository.DashboardRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/stats",
			Method:      http.MethodGet,
			Handler:     GetDashboardStats(dashboardRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
