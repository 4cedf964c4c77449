package authenticating

import "github.com/pkg/errors"

var (
	// ErrInvalidCredentials indica email ou senha incorretos
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	// ErrUserDisabled indica usuário desativado
	ErrUserDisabled = errors.New("usuário desativado")

	// ErrUserNotFound indica usuário inexistente
	ErrUserNotFound = errors.New("usuário não encontrado")

	// ErrUserAlreadyExists indica email já cadastrado
	ErrUserAlreadyExists = errors.New("email já cadastrado")

	// ErrInvalidToken indica token inválido ou expirado
	ErrInvalidToken = errors.New("token inválido")

	// ErrWeakPassword indica senha abaixo do tamanho mínimo
	ErrWeakPassword = errors.New("a senha precisa de pelo menos 8 caracteres")

	// ErrInvalidEmail indica email fora do formato esperado
	ErrInvalidEmail = errors.New("email inválido")

	// ErrInvalidRole indica role desconhecido
	ErrInvalidRole = errors.New("role inválido")

	// ErrMissingRequiredData indica campos obrigatórios ausentes
	ErrMissingRequiredData = errors.New("nome e email são obrigatórios")
)
