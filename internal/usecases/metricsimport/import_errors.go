package metricsimport

import "github.com/pkg/errors"

var (
	// ErrMissingAccount indica cadastro de métrica sem conta
	ErrMissingAccount = errors.New("conta não informada")

	// ErrInvalidDate indica data fora do formato YYYY-MM-DD
	ErrInvalidDate = errors.New("data inválida")

	// ErrNegativeValue indica valor numérico negativo em uma métrica
	ErrNegativeValue = errors.New("valores de métrica não podem ser negativos")

	// ErrDuplicateMetric indica métrica já cadastrada para a conta e data
	ErrDuplicateMetric = errors.New("métrica já cadastrada para esta conta e data")

	// ErrEmptyFile indica arquivo de importação vazio ou ilegível
	ErrEmptyFile = errors.New("arquivo de importação vazio")

	// ErrMissingColumn indica coluna obrigatória ausente no cabeçalho
	ErrMissingColumn = errors.New("coluna obrigatória ausente")
)
