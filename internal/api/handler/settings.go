package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/internal/usecases/sitesettings"
	"github.com/sociallearn/index-api/pkg/apiErrors"
)

func ListPublicSettings(service sitesettings.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.ListPublic()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar configurações públicas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar configurações", nil)
			return
		}

		writeJSON(w, http.StatusOK, settings)
	}
}

func ListAllSettings(service sitesettings.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.ListAll()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar configurações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar configurações", nil)
			return
		}

		writeJSON(w, http.StatusOK, settings)
	}
}

func CreateSetting(service sitesettings.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateSettingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		setting, err := service.Create(req)
		if err != nil {
			handleSettingsError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, setting)
	}
}

func UpdateSetting(service sitesettings.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := httprouter.ParamsFromContext(r.Context()).ByName("key")

		var req domain.UpdateSettingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		setting, err := service.UpdateByKey(key, req)
		if err != nil {
			handleSettingsError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, setting)
	}
}

func handleSettingsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sitesettings.ErrSettingNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Configuração não encontrada", nil)

	case errors.Is(err, sitesettings.ErrMissingKey),
		errors.Is(err, sitesettings.ErrInvalidType),
		errors.Is(err, sitesettings.ErrInvalidValue):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, sitesettings.ErrKeyAlreadyExists):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateEntry, "Já existe uma configuração com esta chave", nil)

	default:
		logrus.WithError(err).Error("Erro na operação de configurações")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
