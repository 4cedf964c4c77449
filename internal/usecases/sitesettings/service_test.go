package sitesettings

import (
	"testing"

	"github.com/sociallearn/index-api/infrastructure/repository/mocks"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSettingsWithMock(t *testing.T) (Settings, *mocks.MockSettingsRepository) {
	ctrl := gomock.NewController(t)
	settingsRepo := mocks.NewMockSettingsRepository(ctrl)

	return NewSettingsService(settingsRepo), settingsRepo
}

func TestCreateDefaultsToTextType(t *testing.T) {
	service, settingsRepo := newSettingsWithMock(t)

	settingsRepo.EXPECT().GetByKey("site_name").Return(nil, nil)
	settingsRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req domain.CreateSettingRequest) (*domain.Setting, error) {
			assert.Equal(t, domain.SettingTypeText, req.Type)
			return &domain.Setting{ID: 1, Key: req.Key, Type: req.Type}, nil
		})

	setting, err := service.Create(domain.CreateSettingRequest{
		Key:   "site_name",
		Value: "Índice de Influência",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SettingTypeText, setting.Type)
}

func TestCreateRejectsDuplicateKey(t *testing.T) {
	service, settingsRepo := newSettingsWithMock(t)

	settingsRepo.EXPECT().GetByKey("site_name").Return(&domain.Setting{ID: 1, Key: "site_name"}, nil)

	_, err := service.Create(domain.CreateSettingRequest{Key: "site_name", Value: "x"})

	assert.ErrorIs(t, err, ErrKeyAlreadyExists)
}

func TestCreateValidation(t *testing.T) {
	service, _ := newSettingsWithMock(t)

	tests := []struct {
		name string
		req  domain.CreateSettingRequest
		want error
	}{
		{
			name: "sem chave",
			req:  domain.CreateSettingRequest{Value: "x"},
			want: ErrMissingKey,
		},
		{
			name: "tipo desconhecido",
			req:  domain.CreateSettingRequest{Key: "k", Value: "x", Type: "datetime"},
			want: ErrInvalidType,
		},
		{
			name: "json inválido",
			req:  domain.CreateSettingRequest{Key: "k", Value: "{invalido", Type: domain.SettingTypeJSON},
			want: ErrInvalidValue,
		},
		{
			name: "booleano inválido",
			req:  domain.CreateSettingRequest{Key: "k", Value: "talvez", Type: domain.SettingTypeBoolean},
			want: ErrInvalidValue,
		},
		{
			name: "número inválido",
			req:  domain.CreateSettingRequest{Key: "k", Value: "dez", Type: domain.SettingTypeNumber},
			want: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateByKeyNotFound(t *testing.T) {
	service, settingsRepo := newSettingsWithMock(t)

	settingsRepo.EXPECT().GetByKey("inexistente").Return(nil, nil)

	_, err := service.UpdateByKey("inexistente", domain.UpdateSettingRequest{Value: "x"})

	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestUpdateByKeyValidatesAgainstExistingType(t *testing.T) {
	service, settingsRepo := newSettingsWithMock(t)

	settingsRepo.EXPECT().
		GetByKey("homepage_top_limit").
		Return(&domain.Setting{ID: 2, Key: "homepage_top_limit", Type: domain.SettingTypeNumber}, nil)

	_, err := service.UpdateByKey("homepage_top_limit", domain.UpdateSettingRequest{Value: "dez"})

	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestUpdateByKeyChangesType(t *testing.T) {
	service, settingsRepo := newSettingsWithMock(t)

	newType := domain.SettingTypeBoolean
	settingsRepo.EXPECT().
		GetByKey("ranking_auto_publish").
		Return(&domain.Setting{ID: 3, Key: "ranking_auto_publish", Type: domain.SettingTypeText}, nil)
	settingsRepo.EXPECT().
		UpdateByKey("ranking_auto_publish", gomock.Any()).
		Return(&domain.Setting{ID: 3, Key: "ranking_auto_publish", Type: newType, Value: "true"}, nil)

	setting, err := service.UpdateByKey("ranking_auto_publish", domain.UpdateSettingRequest{
		Value: "true",
		Type:  &newType,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SettingTypeBoolean, setting.Type)
}
