package blogging

import "github.com/pkg/errors"

var (
	// ErrPostNotFound indica post inexistente ou não publicado
	ErrPostNotFound = errors.New("post não encontrado")

	// ErrMissingTitleOrContent indica post sem título ou conteúdo
	ErrMissingTitleOrContent = errors.New("título e conteúdo são obrigatórios")

	// ErrInvalidStatus indica status fora de draft/published/archived
	ErrInvalidStatus = errors.New("status de post inválido")

	// ErrSlugAlreadyExists indica slug já em uso por outro post
	ErrSlugAlreadyExists = errors.New("já existe um post com este slug")
)
