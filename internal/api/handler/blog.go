package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/internal/usecases/blogging"
	"github.com/sociallearn/index-api/pkg/apiErrors"
)

func ListBlogPosts(service blogging.Blogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.BlogFilters{
			Tag:    r.URL.Query().Get("tag"),
			Search: r.URL.Query().Get("search"),
			Page:   queryInt(r, "page", 1),
			Limit:  queryInt(r, "limit", 10),
		}

		posts, pagination, err := service.ListPublished(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar posts do blog")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar posts", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"posts":      posts,
			"pagination": pagination,
		})
	}
}

func GetBlogPost(service blogging.Blogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		post, err := service.GetPublishedBySlug(slug)
		if err != nil {
			handleBlogError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}

func ListAllBlogPosts(service blogging.Blogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryInt(r, "page", 1)
		limit := queryInt(r, "limit", 10)

		posts, pagination, err := service.ListAll(page, limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar posts no painel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar posts", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"posts":      posts,
			"pagination": pagination,
		})
	}
}

func CreateBlogPost(service blogging.Blogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CreateBlogPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		post, err := service.Create(req, claims.UserID)
		if err != nil {
			handleBlogError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, post)
	}
}

func UpdateBlogPost(service blogging.Blogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := postIDFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do post inválido", nil)
			return
		}

		var req domain.UpdateBlogPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		post, err := service.Update(postID, req)
		if err != nil {
			handleBlogError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, post)
	}
}

func DeleteBlogPost(service blogging.Blogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := postIDFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do post inválido", nil)
			return
		}

		if err := service.Delete(postID); err != nil {
			handleBlogError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"message": "Post removido com sucesso"})
	}
}

func postIDFromPath(r *http.Request) (int, error) {
	return strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
}

func handleBlogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, blogging.ErrPostNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Post não encontrado", nil)

	case errors.Is(err, blogging.ErrMissingTitleOrContent),
		errors.Is(err, blogging.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, blogging.ErrSlugAlreadyExists):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateEntry, "Já existe um post com este slug", nil)

	default:
		logrus.WithError(err).Error("Erro na operação do blog")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
