package ranking

import "github.com/pkg/errors"

var (
	// ErrPlatformNotFound indica que a plataforma pedida não existe
	ErrPlatformNotFound = errors.New("plataforma não encontrada")
)
