package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/internal/usecases/ranking"
	"github.com/sociallearn/index-api/pkg/apiErrors"
	"github.com/sociallearn/index-api/pkg/utils"
)

func GetCombinedRanking(service ranking.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.RankingFilters{
			Country: r.URL.Query().Get("country"),
			Type:    r.URL.Query().Get("type"),
			Page:    queryInt(r, "page", 1),
			Limit:   queryInt(r, "limit", 20),
		}

		entries, pagination, err := service.GetCombinedRanking(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar o ranking combinado")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o ranking", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"rankings":   entries,
			"pagination": pagination,
		})
	}
}

func GetPlatformRanking(service ranking.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platformName := httprouter.ParamsFromContext(r.Context()).ByName("platform")
		page := queryInt(r, "page", 1)
		limit := queryInt(r, "limit", 20)

		entries, pagination, platform, err := service.GetPlatformRanking(platformName, page, limit)
		if err != nil {
			if errors.Is(err, ranking.ErrPlatformNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Plataforma não encontrada", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao buscar o ranking por plataforma")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o ranking", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"platform":   platform,
			"rankings":   entries,
			"pagination": pagination,
		})
	}
}

func GetTopInstitutions(service ranking.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", 5)

		top, err := service.GetTopInstitutions(limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar o top de instituições")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o ranking", nil)
			return
		}

		writeJSON(w, http.StatusOK, top)
	}
}

func GetTrending(service ranking.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", 10)

		trending, err := service.GetTrending(limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar instituições em alta")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar instituições em alta", nil)
			return
		}

		writeJSON(w, http.StatusOK, trending)
	}
}

type recalculateRequest struct {
	Publish bool   `json:"publish"`
	Date    string `json:"date"`
}

// RecalculateRanking dispara o recálculo sob demanda. O corpo é opcional:
// sem corpo, recalcula a data corrente sem publicar.
func RecalculateRanking(service ranking.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recalculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		var date *time.Time
		if req.Date != "" {
			parsed, err := utils.ParseDate(req.Date)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use YYYY-MM-DD", nil)
				return
			}
			date = parsed
		}

		result, err := service.Recalculate(r.Context(), req.Publish, date)
		if err != nil {
			logrus.WithError(err).Error("Erro ao recalcular o ranking")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao recalcular o ranking", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func PreviewRanking(service ranking.Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := queryInt(r, "limit", 20)

		preview, err := service.Preview(limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao calcular a prévia do ranking")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular a prévia", nil)
			return
		}

		writeJSON(w, http.StatusOK, preview)
	}
}
