package media

import "github.com/pkg/errors"

var (
	// ErrUnsupportedFileType indica extensão fora da lista de imagens aceitas
	ErrUnsupportedFileType = errors.New("tipo de arquivo não suportado")

	// ErrFileTooLarge indica arquivo acima do tamanho máximo configurado
	ErrFileTooLarge = errors.New("arquivo acima do tamanho máximo permitido")
)
