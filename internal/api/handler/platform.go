package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/sociallearn/index-api/infrastructure/repository"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/pkg/apiErrors"
)

func ListPlatforms(platformRepo repository.PlatformRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platforms, err := platformRepo.ListPlatforms()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar plataformas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar plataformas", nil)
			return
		}

		writeJSON(w, http.StatusOK, platforms)
	}
}

// UpdatePlatform altera o peso e/ou a atividade de uma plataforma. O efeito
// no ranking só aparece após um novo recálculo.
func UpdatePlatform(platformRepo repository.PlatformRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platformID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da plataforma inválido", nil)
			return
		}

		var req domain.UpdatePlatformRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Weight != nil && (*req.Weight < 0 || *req.Weight > 5) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Peso deve estar entre 0 e 5", nil)
			return
		}

		existing, err := platformRepo.GetByID(platformID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar plataforma")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar plataforma", nil)
			return
		}

		if existing == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Plataforma não encontrada", nil)
			return
		}

		platform, err := platformRepo.UpdatePlatform(platformID, req)
		if err != nil {
			logrus.WithError(err).Error("Erro ao atualizar plataforma")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar plataforma", nil)
			return
		}

		writeJSON(w, http.StatusOK, platform)
	}
}
