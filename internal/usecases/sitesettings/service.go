// Package sitesettings cuida das configurações de chave/valor do site
package sitesettings

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sociallearn/index-api/infrastructure/repository"
	"github.com/sociallearn/index-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Settings interface {
	ListPublic() ([]*domain.Setting, error)
	ListAll() ([]*domain.Setting, error)
	Create(req domain.CreateSettingRequest) (*domain.Setting, error)
	UpdateByKey(key string, req domain.UpdateSettingRequest) (*domain.Setting, error)
}

type settingsService struct {
	settingsRepository repository.SettingsRepository
}

func NewSettingsService(settingsRepository repository.SettingsRepository) Settings {
	return &settingsService{
		settingsRepository: settingsRepository,
	}
}

func (s *settingsService) ListPublic() ([]*domain.Setting, error) {
	return s.settingsRepository.ListPublic()
}

func (s *settingsService) ListAll() ([]*domain.Setting, error) {
	return s.settingsRepository.ListAll()
}

func (s *settingsService) Create(req domain.CreateSettingRequest) (*domain.Setting, error) {
	if req.Key == "" {
		return nil, ErrMissingKey
	}

	if req.Type == "" {
		req.Type = domain.SettingTypeText
	}

	if !domain.ValidSettingType(req.Type) {
		return nil, ErrInvalidType
	}

	if err := validateValue(req.Value, req.Type); err != nil {
		return nil, err
	}

	existing, err := s.settingsRepository.GetByKey(req.Key)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, ErrKeyAlreadyExists
	}

	return s.settingsRepository.Create(req)
}

func (s *settingsService) UpdateByKey(key string, req domain.UpdateSettingRequest) (*domain.Setting, error) {
	existing, err := s.settingsRepository.GetByKey(key)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, ErrSettingNotFound
	}

	settingType := existing.Type
	if req.Type != nil {
		if !domain.ValidSettingType(*req.Type) {
			return nil, ErrInvalidType
		}
		settingType = *req.Type
	}

	if err := validateValue(req.Value, settingType); err != nil {
		return nil, err
	}

	return s.settingsRepository.UpdateByKey(key, req)
}

// validateValue garante que o valor é coerente com o tipo declarado. Tudo é
// armazenado como texto; o tipo orienta o consumo no front.
func validateValue(value, settingType string) error {
	switch settingType {
	case domain.SettingTypeJSON:
		if !json.Valid([]byte(value)) {
			return ErrInvalidValue
		}
	case domain.SettingTypeBoolean:
		if _, err := strconv.ParseBool(value); err != nil {
			return ErrInvalidValue
		}
	case domain.SettingTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return ErrInvalidValue
		}
	}

	return nil
}
