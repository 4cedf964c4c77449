package institution

import (
	"testing"

	"github.com/lib/pq"
	"github.com/sociallearn/index-api/infrastructure/repository/mocks"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newInstitutionWithMocks(t *testing.T) (Institutioner, *mocks.MockInstitutionRepository, *mocks.MockPlatformRepository) {
	ctrl := gomock.NewController(t)
	institutionRepo := mocks.NewMockInstitutionRepository(ctrl)
	platformRepo := mocks.NewMockPlatformRepository(ctrl)

	return NewInstitutionService(institutionRepo, platformRepo), institutionRepo, platformRepo
}

func TestListNormalizesPagination(t *testing.T) {
	service, institutionRepo, _ := newInstitutionWithMocks(t)

	institutionRepo.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(filters domain.InstitutionFilters) ([]*domain.Institution, int, error) {
			assert.Equal(t, 1, filters.Page)
			assert.Equal(t, 20, filters.Limit)
			return []*domain.Institution{}, 0, nil
		})

	_, _, err := service.List(domain.InstitutionFilters{Page: -3, Limit: 500})

	require.NoError(t, err)
}

func TestGetProfileNotFound(t *testing.T) {
	service, institutionRepo, _ := newInstitutionWithMocks(t)

	institutionRepo.EXPECT().GetByID("desconhecida").Return(nil, nil)

	_, err := service.GetProfile("desconhecida")

	assert.ErrorIs(t, err, ErrInstitutionNotFound)
}

func TestGetProfile(t *testing.T) {
	service, institutionRepo, _ := newInstitutionWithMocks(t)

	institutionRepo.EXPECT().GetByID("inst-1").Return(&domain.Institution{ID: "inst-1", Name: "USP"}, nil)
	institutionRepo.EXPECT().ListSocialAccounts("inst-1").Return([]*domain.SocialAccount{{ID: "acc-1"}}, nil)
	institutionRepo.EXPECT().GetLatestMetrics("inst-1").Return([]*domain.LatestAccountMetric{{AccountID: "acc-1"}}, nil)

	profile, err := service.GetProfile("inst-1")

	require.NoError(t, err)
	assert.Equal(t, "USP", profile.Institution.Name)
	assert.Len(t, profile.SocialAccounts, 1)
	assert.Len(t, profile.LatestMetrics, 1)
}

func TestCreateValidation(t *testing.T) {
	service, _, _ := newInstitutionWithMocks(t)

	tests := []struct {
		name string
		req  domain.CreateInstitutionRequest
		want error
	}{
		{
			name: "sem nome",
			req:  domain.CreateInstitutionRequest{CountryID: 1, TypeID: 1},
			want: ErrMissingName,
		},
		{
			name: "sem país",
			req:  domain.CreateInstitutionRequest{Name: "USP", TypeID: 1},
			want: ErrMissingCountryOrType,
		},
		{
			name: "sem tipo",
			req:  domain.CreateInstitutionRequest{Name: "USP", CountryID: 1},
			want: ErrMissingCountryOrType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAddSocialAccountUnknownPlatform(t *testing.T) {
	service, _, platformRepo := newInstitutionWithMocks(t)

	platformRepo.EXPECT().GetByID(99).Return(nil, nil)

	_, err := service.AddSocialAccount("inst-1", domain.CreateSocialAccountRequest{
		PlatformID: 99,
		Handle:     "@usp",
	})

	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestAddSocialAccountDuplicate(t *testing.T) {
	service, institutionRepo, platformRepo := newInstitutionWithMocks(t)

	platformRepo.EXPECT().GetByID(1).Return(&domain.Platform{ID: 1, Name: "instagram"}, nil)
	institutionRepo.EXPECT().GetByID("inst-1").Return(&domain.Institution{ID: "inst-1"}, nil)
	institutionRepo.EXPECT().
		AddSocialAccount("inst-1", gomock.Any()).
		Return(nil, &pq.Error{Code: "23505"})

	_, err := service.AddSocialAccount("inst-1", domain.CreateSocialAccountRequest{
		PlatformID: 1,
		Handle:     "@usp",
	})

	assert.ErrorIs(t, err, ErrAccountAlreadyExists)
}

func TestAddSocialAccount(t *testing.T) {
	service, institutionRepo, platformRepo := newInstitutionWithMocks(t)

	platformRepo.EXPECT().GetByID(1).Return(&domain.Platform{ID: 1, Name: "instagram"}, nil)
	institutionRepo.EXPECT().GetByID("inst-1").Return(&domain.Institution{ID: "inst-1"}, nil)
	institutionRepo.EXPECT().
		AddSocialAccount("inst-1", gomock.Any()).
		Return(&domain.SocialAccount{ID: "acc-1", InstitutionID: "inst-1", PlatformID: 1, Handle: "@usp"}, nil)

	account, err := service.AddSocialAccount("inst-1", domain.CreateSocialAccountRequest{
		PlatformID: 1,
		Handle:     "@usp",
	})

	require.NoError(t, err)
	assert.Equal(t, "acc-1", account.ID)
}
