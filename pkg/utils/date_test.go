package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *date)
}

func TestParseDateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
	}{
		{name: "vazia", dateStr: ""},
		{name: "formato brasileiro", dateStr: "01/06/2025"},
		{name: "sem dia", dateStr: "2025-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.dateStr)
			assert.Error(t, err)
		})
	}
}
