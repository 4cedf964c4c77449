package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/internal/usecases/institution"
	"github.com/sociallearn/index-api/pkg/apiErrors"
)

// queryInt lê um parâmetro inteiro da query string com valor padrão
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

func ListInstitutions(service institution.Institutioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.InstitutionFilters{
			Country: r.URL.Query().Get("country"),
			Type:    r.URL.Query().Get("type"),
			Search:  r.URL.Query().Get("search"),
			Page:    queryInt(r, "page", 1),
			Limit:   queryInt(r, "limit", 20),
		}

		institutions, pagination, err := service.List(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar instituições")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar instituições", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"institutions": institutions,
			"pagination":   pagination,
		})
	}
}

func GetInstitutionProfile(service institution.Institutioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		profile, err := service.GetProfile(id)
		if err != nil {
			handleInstitutionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

func CreateInstitution(service institution.Institutioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateInstitutionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.Create(req)
		if err != nil {
			handleInstitutionError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateInstitution(service institution.Institutioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateInstitutionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		updated, err := service.Update(id, req)
		if err != nil {
			handleInstitutionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func AddSocialAccount(service institution.Institutioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.CreateSocialAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		account, err := service.AddSocialAccount(id, req)
		if err != nil {
			handleInstitutionError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, account)
	}
}

func ListCountries(service institution.Institutioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		countries, err := service.ListCountries()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar países")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar países", nil)
			return
		}

		writeJSON(w, http.StatusOK, countries)
	}
}

func ListInstitutionTypes(service institution.Institutioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := service.ListInstitutionTypes()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar tipos de instituição")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar tipos de instituição", nil)
			return
		}

		writeJSON(w, http.StatusOK, types)
	}
}

func handleInstitutionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, institution.ErrInstitutionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Instituição não encontrada", nil)

	case errors.Is(err, institution.ErrMissingName),
		errors.Is(err, institution.ErrMissingCountryOrType),
		errors.Is(err, institution.ErrMissingHandle),
		errors.Is(err, institution.ErrUnknownPlatform):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, institution.ErrAccountAlreadyExists):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateEntry, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Erro na operação de instituição")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
