package sitesettings

import "github.com/pkg/errors"

var (
	// ErrMissingKey indica configuração sem chave
	ErrMissingKey = errors.New("a chave da configuração é obrigatória")

	// ErrInvalidType indica tipo fora de text/json/boolean/number
	ErrInvalidType = errors.New("tipo de configuração inválido")

	// ErrInvalidValue indica valor incoerente com o tipo declarado
	ErrInvalidValue = errors.New("valor incompatível com o tipo da configuração")

	// ErrKeyAlreadyExists indica chave já cadastrada
	ErrKeyAlreadyExists = errors.New("já existe uma configuração com esta chave")

	// ErrSettingNotFound indica configuração inexistente
	ErrSettingNotFound = errors.New("configuração não encontrada")
)
