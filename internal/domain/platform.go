package domain

// Platform representa uma rede social monitorada. O peso é configurável
// pelo administrador e afeta todos os cálculos futuros do ranking combinado.
type Platform struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	DisplayName  string  `json:"display_name"`
	Weight       float64 `json:"weight"`
	IsActive     bool    `json:"is_active"`
	ColorHex     *string `json:"color_hex,omitempty"`
	IconName     *string `json:"icon_name,omitempty"`
	AccountCount int     `json:"account_count,omitempty"`
}

// UpdatePlatformRequest atualiza peso e/ou status de uma plataforma
type UpdatePlatformRequest struct {
	Weight   *float64 `json:"weight"`
	IsActive *bool    `json:"is_active"`
}
