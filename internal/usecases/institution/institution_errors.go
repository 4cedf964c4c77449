package institution

import "github.com/pkg/errors"

var (
	// ErrInstitutionNotFound indica instituição inexistente ou despublicada
	ErrInstitutionNotFound = errors.New("instituição não encontrada")

	// ErrMissingName indica cadastro sem nome
	ErrMissingName = errors.New("o nome da instituição é obrigatório")

	// ErrMissingCountryOrType indica cadastro sem país ou tipo
	ErrMissingCountryOrType = errors.New("país e tipo da instituição são obrigatórios")

	// ErrMissingHandle indica conta social sem handle
	ErrMissingHandle = errors.New("o handle da conta é obrigatório")

	// ErrUnknownPlatform indica plataforma inexistente
	ErrUnknownPlatform = errors.New("plataforma desconhecida")

	// ErrAccountAlreadyExists indica que a instituição já tem conta na plataforma
	ErrAccountAlreadyExists = errors.New("a instituição já possui conta nesta plataforma")
)
