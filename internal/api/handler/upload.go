package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sociallearn/index-api/internal/usecases/media"
	"github.com/sociallearn/index-api/pkg/apiErrors"
)

// maxUploadSize limita o corpo do upload de imagem (5 MB)
const maxUploadSize = 5 << 20

// UploadImage recebe uma imagem multipart no campo "image", grava em disco
// e retorna os metadados com a URL pública
func UploadImage(service media.Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo inválido ou grande demais", nil)
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'image' ausente na requisição", nil)
			return
		}
		defer file.Close()

		mimeType := header.Header.Get("Content-Type")

		saved, err := service.SaveImage(header.Filename, mimeType, header.Size, file, claims.UserID)
		if err != nil {
			handleUploadError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, saved)
	}
}

func handleUploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, media.ErrUnsupportedFileType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de arquivo não suportado", nil)

	case errors.Is(err, media.ErrFileTooLarge):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Arquivo excede o tamanho máximo permitido", nil)

	default:
		logrus.WithError(err).Error("Erro ao salvar imagem")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao salvar imagem", nil)
	}
}
