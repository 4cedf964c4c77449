// Package institution cuida do cadastro e do perfil público de instituições
package institution

import (
	"github.com/sociallearn/index-api/infrastructure/repository"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/pkg/log"
)

type Institutioner interface {
	List(filters domain.InstitutionFilters) ([]*domain.Institution, domain.Pagination, error)
	GetProfile(id string) (*domain.InstitutionProfile, error)
	Create(req domain.CreateInstitutionRequest) (*domain.Institution, error)
	Update(id string, req domain.UpdateInstitutionRequest) (*domain.Institution, error)
	AddSocialAccount(institutionID string, req domain.CreateSocialAccountRequest) (*domain.SocialAccount, error)
	ListCountries() ([]*domain.Country, error)
	ListInstitutionTypes() ([]*domain.InstitutionType, error)
}

type institutionService struct {
	institutionRepository repository.InstitutionRepository
	platformRepository    repository.PlatformRepository
}

func NewInstitutionService(
	institutionRepository repository.InstitutionRepository,
	platformRepository repository.PlatformRepository,
) Institutioner {
	return &institutionService{
		institutionRepository: institutionRepository,
		platformRepository:    platformRepository,
	}
}

func (s *institutionService) List(filters domain.InstitutionFilters) ([]*domain.Institution, domain.Pagination, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}

	if filters.Limit < 1 || filters.Limit > 100 {
		filters.Limit = 20
	}

	institutions, totalCount, err := s.institutionRepository.List(filters)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return institutions, domain.NewPagination(filters.Page, filters.Limit, totalCount), nil
}

// GetProfile monta o perfil completo: dados da instituição, contas sociais e
// a métrica mais recente de cada conta
func (s *institutionService) GetProfile(id string) (*domain.InstitutionProfile, error) {
	institution, err := s.institutionRepository.GetByID(id)
	if err != nil {
		return nil, err
	}

	if institution == nil {
		return nil, ErrInstitutionNotFound
	}

	accounts, err := s.institutionRepository.ListSocialAccounts(id)
	if err != nil {
		return nil, err
	}

	metrics, err := s.institutionRepository.GetLatestMetrics(id)
	if err != nil {
		return nil, err
	}

	return &domain.InstitutionProfile{
		Institution:    *institution,
		SocialAccounts: accounts,
		LatestMetrics:  metrics,
	}, nil
}

func (s *institutionService) Create(req domain.CreateInstitutionRequest) (*domain.Institution, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}

	if req.CountryID == 0 || req.TypeID == 0 {
		return nil, ErrMissingCountryOrType
	}

	created, err := s.institutionRepository.Create(req)
	if err != nil {
		return nil, err
	}

	log.L.WithField("institution_id", created.ID).Info("Instituição criada")

	return created, nil
}

func (s *institutionService) Update(id string, req domain.UpdateInstitutionRequest) (*domain.Institution, error) {
	updated, err := s.institutionRepository.Update(id, req)
	if err != nil {
		return nil, err
	}

	if updated == nil {
		return nil, ErrInstitutionNotFound
	}

	return updated, nil
}

// AddSocialAccount vincula uma conta da instituição a uma plataforma. Cada
// instituição tem no máximo uma conta por plataforma.
func (s *institutionService) AddSocialAccount(institutionID string, req domain.CreateSocialAccountRequest) (*domain.SocialAccount, error) {
	if req.Handle == "" {
		return nil, ErrMissingHandle
	}

	platform, err := s.platformRepository.GetByID(req.PlatformID)
	if err != nil {
		return nil, err
	}

	if platform == nil {
		return nil, ErrUnknownPlatform
	}

	institution, err := s.institutionRepository.GetByID(institutionID)
	if err != nil {
		return nil, err
	}

	if institution == nil {
		return nil, ErrInstitutionNotFound
	}

	account, err := s.institutionRepository.AddSocialAccount(institutionID, req)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAccountAlreadyExists
		}
		return nil, err
	}

	return account, nil
}

func (s *institutionService) ListCountries() ([]*domain.Country, error) {
	return s.institutionRepository.ListCountries()
}

func (s *institutionService) ListInstitutionTypes() ([]*domain.InstitutionType, error) {
	return s.institutionRepository.ListInstitutionTypes()
}
