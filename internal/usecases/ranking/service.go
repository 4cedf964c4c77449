package ranking

import (
	"context"
	"time"

	"github.com/sociallearn/index-api/infrastructure/repository"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/pkg/log"
	"github.com/sociallearn/index-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=./mocks/service.go -package=mocks

type Ranker interface {
	Recalculate(ctx context.Context, publish bool, date *time.Time) (*domain.RecalculationResult, error)
	Preview(limit int) ([]*domain.PreviewEntry, error)
	GetCombinedRanking(filters domain.RankingFilters) ([]*domain.CombinedRankingEntry, domain.Pagination, error)
	GetPlatformRanking(platformName string, page, limit int) ([]*domain.PlatformRankingEntry, domain.Pagination, *domain.Platform, error)
	GetTopInstitutions(limit int) ([]*domain.TopInstitution, error)
	GetTrending(limit int) ([]*domain.TrendingInstitution, error)
}

type rankerService struct {
	rankingRepository  repository.RankingRepository
	metricRepository   repository.MetricRepository
	platformRepository repository.PlatformRepository
}

func NewRankerService(
	rankingRepository repository.RankingRepository,
	metricRepository repository.MetricRepository,
	platformRepository repository.PlatformRepository,
) Ranker {
	return &rankerService{
		rankingRepository:  rankingRepository,
		metricRepository:   metricRepository,
		platformRepository: platformRepository,
	}
}

// Recalculate executa o recálculo completo do ranking para uma data. Quando
// date é nil, usa a data corrente. O snapshot da data é substituído
// atomicamente: rodar duas vezes produz o mesmo resultado.
func (s *rankerService) Recalculate(ctx context.Context, publish bool, date *time.Time) (*domain.RecalculationResult, error) {
	calculationDate := utils.TruncateToDate(time.Now().UTC())
	if date != nil {
		calculationDate = utils.TruncateToDate(*date)
	}

	metrics, err := s.metricRepository.GetLatestAccountMetrics()
	if err != nil {
		return nil, err
	}

	activePlatforms, err := s.platformRepository.ListActivePlatforms()
	if err != nil {
		return nil, err
	}

	platformRows, combinedRows := BuildSnapshot(metrics, activePlatforms, calculationDate, publish)

	rows := make([]*domain.RankingRow, 0, len(platformRows)+len(combinedRows))
	rows = append(rows, platformRows...)
	rows = append(rows, combinedRows...)

	if err := s.rankingRepository.ReplaceSnapshot(ctx, calculationDate, rows); err != nil {
		return nil, err
	}

	log.L.WithContext(ctx).WithFields(log.Fields{
		"calculation_date": calculationDate.Format("2006-01-02"),
		"platform_rows":    len(platformRows),
		"combined_rows":    len(combinedRows),
		"published":        publish,
	}).Info("Recálculo do ranking concluído")

	return &domain.RecalculationResult{
		CalculationDate: calculationDate.Format("2006-01-02"),
		PlatformRows:    len(platformRows),
		CombinedRows:    len(combinedRows),
		Published:       publish,
	}, nil
}

// Preview calcula o ranking combinado em memória e retorna as primeiras
// posições sem persistir nada. Serve para o administrador conferir o efeito
// de novos pesos antes de recalcular de verdade.
func (s *rankerService) Preview(limit int) ([]*domain.PreviewEntry, error) {
	metrics, err := s.metricRepository.GetLatestAccountMetrics()
	if err != nil {
		return nil, err
	}

	activePlatforms, err := s.platformRepository.ListActivePlatforms()
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(metrics))
	for _, metric := range metrics {
		names[metric.InstitutionID] = metric.InstitutionName
	}

	_, combinedRows := BuildSnapshot(metrics, activePlatforms, utils.TruncateToDate(time.Now().UTC()), false)

	if limit < 0 {
		limit = 0
	}
	if limit > len(combinedRows) {
		limit = len(combinedRows)
	}

	preview := make([]*domain.PreviewEntry, 0, limit)
	for _, row := range combinedRows[:limit] {
		preview = append(preview, &domain.PreviewEntry{
			RankPosition:  row.RankPosition,
			Score:         utils.RoundWithTwoDecimalPlace(row.Score),
			InstitutionID: row.InstitutionID,
			Name:          names[row.InstitutionID],
		})
	}

	return preview, nil
}

// GetCombinedRanking lista o snapshot combinado publicado mais recente
func (s *rankerService) GetCombinedRanking(filters domain.RankingFilters) ([]*domain.CombinedRankingEntry, domain.Pagination, error) {
	latest, err := s.rankingRepository.LatestPublishedDate(domain.RankingTypeCombined, nil)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	if latest == nil {
		return []*domain.CombinedRankingEntry{}, domain.NewPagination(filters.Page, filters.Limit, 0), nil
	}

	entries, totalCount, err := s.rankingRepository.ListCombined(*latest, filters)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	return entries, domain.NewPagination(filters.Page, filters.Limit, totalCount), nil
}

// GetPlatformRanking lista o snapshot publicado mais recente de uma
// plataforma identificada pelo nome
func (s *rankerService) GetPlatformRanking(platformName string, page, limit int) ([]*domain.PlatformRankingEntry, domain.Pagination, *domain.Platform, error) {
	platform, err := s.platformRepository.GetByName(platformName)
	if err != nil {
		return nil, domain.Pagination{}, nil, err
	}

	if platform == nil {
		return nil, domain.Pagination{}, nil, ErrPlatformNotFound
	}

	latest, err := s.rankingRepository.LatestPublishedDate(domain.RankingTypePlatformSpecific, &platform.ID)
	if err != nil {
		return nil, domain.Pagination{}, nil, err
	}

	if latest == nil {
		return []*domain.PlatformRankingEntry{}, domain.NewPagination(page, limit, 0), platform, nil
	}

	entries, totalCount, err := s.rankingRepository.ListByPlatform(platform.ID, *latest, page, limit)
	if err != nil {
		return nil, domain.Pagination{}, nil, err
	}

	return entries, domain.NewPagination(page, limit, totalCount), platform, nil
}

func (s *rankerService) GetTopInstitutions(limit int) ([]*domain.TopInstitution, error) {
	latest, err := s.rankingRepository.LatestPublishedDate(domain.RankingTypeCombined, nil)
	if err != nil {
		return nil, err
	}

	if latest == nil {
		return []*domain.TopInstitution{}, nil
	}

	return s.rankingRepository.TopCombined(*latest, limit)
}

func (s *rankerService) GetTrending(limit int) ([]*domain.TrendingInstitution, error) {
	return s.rankingRepository.Trending(limit)
}
