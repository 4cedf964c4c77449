package domain

import "time"

// Tipos de valor aceitos nas configurações do site
const (
	SettingTypeText    = "text"
	SettingTypeJSON    = "json"
	SettingTypeBoolean = "boolean"
	SettingTypeNumber  = "number"
)

type Setting struct {
	ID          int       `json:"id"`
	Key         string    `json:"setting_key"`
	Value       string    `json:"setting_value"`
	Type        string    `json:"setting_type"`
	Description *string   `json:"description"`
	IsPublic    bool      `json:"is_public"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateSettingRequest struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"is_public"`
}

type UpdateSettingRequest struct {
	Value string  `json:"value"`
	Type  *string `json:"type"`
}

// ValidSettingType verifica se o tipo informado é aceito
func ValidSettingType(t string) bool {
	switch t {
	case SettingTypeText, SettingTypeJSON, SettingTypeBoolean, SettingTypeNumber:
		return true
	}
	return false
}
