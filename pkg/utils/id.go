package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateID gera um identificador curto e seguro para URLs
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
