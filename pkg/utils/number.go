package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais.
// Usado apenas no momento da persistência/serialização para não acumular
// erro de arredondamento durante o cálculo.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
