package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/internal/usecases/metricsimport"
	"github.com/sociallearn/index-api/pkg/apiErrors"
	"github.com/sociallearn/index-api/pkg/utils"
)

// maxImportFileSize limita o upload de csv da importação em massa (10 MB)
const maxImportFileSize = 10 << 20

func GetInstitutionMetrics(service metricsimport.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		institutionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		platform := r.URL.Query().Get("platform")
		days := queryInt(r, "days", 30)

		metrics, err := service.GetInstitutionMetrics(institutionID, platform, days)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar métricas da instituição")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar métricas", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"institution_id": institutionID,
			"period_days":    days,
			"platforms":      metrics,
		})
	}
}

func AddMetric(service metricsimport.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CreateMetricRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		sample, err := service.AddMetric(req, claims.UserID)
		if err != nil {
			handleMetricError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, sample)
	}
}

// BulkImportMetrics recebe um arquivo csv multipart no campo "file" e delega
// a importação linha a linha para o serviço
func BulkImportMetrics(service metricsimport.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo de importação inválido ou grande demais", nil)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' ausente na requisição", nil)
			return
		}
		defer file.Close()

		result, err := service.ImportCSV(r.Context(), file, claims.UserID)
		if err != nil {
			handleMetricError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func GetPlatformStats(service metricsimport.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.GetPlatformStats()
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar estatísticas por plataforma")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar estatísticas", nil)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// ExportMetrics exporta as métricas filtradas em csv (padrão) ou json,
// conforme o parâmetro format
func ExportMetrics(service metricsimport.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.MetricExportFilters{
			InstitutionID: r.URL.Query().Get("institution_id"),
			Platform:      r.URL.Query().Get("platform"),
		}

		if raw := r.URL.Query().Get("start_date"); raw != "" {
			startDate, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use YYYY-MM-DD", nil)
				return
			}
			filters.StartDate = startDate
		}

		if raw := r.URL.Query().Get("end_date"); raw != "" {
			endDate, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use YYYY-MM-DD", nil)
				return
			}
			filters.EndDate = endDate
		}

		rows, err := service.Export(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao exportar métricas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao exportar métricas", nil)
			return
		}

		if r.URL.Query().Get("format") == "json" {
			writeJSON(w, http.StatusOK, rows)
			return
		}

		writeMetricsCSV(w, rows)
	}
}

func writeMetricsCSV(w http.ResponseWriter, rows []*domain.MetricExportRow) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="metrics-export.csv"`)

	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"institution_name",
		"platform",
		"handle",
		"followers_count",
		"engagement_rate",
		"total_engagement",
		"monthly_growth",
		"data_date",
	}
	if err := writer.Write(header); err != nil {
		logrus.WithError(err).Error("Erro ao escrever o cabeçalho do csv")
		return
	}

	for _, row := range rows {
		record := []string{
			row.InstitutionName,
			row.Platform,
			row.Handle,
			strconv.FormatInt(row.FollowersCount, 10),
			fmt.Sprintf("%.2f", row.EngagementRate),
			strconv.FormatInt(row.TotalEngagement, 10),
			fmt.Sprintf("%.2f", row.MonthlyGrowth),
			row.DataDate.Format("2006-01-02"),
		}

		if err := writer.Write(record); err != nil {
			logrus.WithError(err).Error("Erro ao escrever linha do csv")
			return
		}
	}
}

func handleMetricError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, metricsimport.ErrMissingAccount),
		errors.Is(err, metricsimport.ErrMissingColumn):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, metricsimport.ErrInvalidDate),
		errors.Is(err, metricsimport.ErrNegativeValue),
		errors.Is(err, metricsimport.ErrEmptyFile):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, metricsimport.ErrDuplicateMetric):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateEntry, "Métrica já existente para esta conta e data", nil)

	default:
		logrus.WithError(err).Error("Erro na operação de métricas")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
