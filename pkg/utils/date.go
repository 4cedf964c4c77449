package utils

import (
	"errors"
	"time"
)

// ParseDate converte uma string no formato YYYY-MM-DD em time.Time. String
// vazia é rejeitada como qualquer outro formato inválido.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, errors.New("data vazia")
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// TruncateToDate remove a parte de hora/minuto/segundo de uma data
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
