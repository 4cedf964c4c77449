package ranking

import (
	"context"
	"testing"
	"time"

	"github.com/sociallearn/index-api/infrastructure/repository/mocks"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServiceWithMocks(t *testing.T) (Ranker, *mocks.MockRankingRepository, *mocks.MockMetricRepository, *mocks.MockPlatformRepository) {
	ctrl := gomock.NewController(t)

	rankingRepo := mocks.NewMockRankingRepository(ctrl)
	metricRepo := mocks.NewMockMetricRepository(ctrl)
	platformRepo := mocks.NewMockPlatformRepository(ctrl)

	service := NewRankerService(rankingRepo, metricRepo, platformRepo)

	return service, rankingRepo, metricRepo, platformRepo
}

func TestRecalculate(t *testing.T) {
	service, rankingRepo, metricRepo, platformRepo := newServiceWithMocks(t)

	metrics := []*domain.LatestAccountMetric{
		metric("inst-a", 1, 1000, 5.0, 1.0),
		metric("inst-b", 1, 500, 2.5, 0.5),
	}
	platforms := []*domain.Platform{activePlatform(1, "instagram", 1.0)}

	metricRepo.EXPECT().GetLatestAccountMetrics().Return(metrics, nil)
	platformRepo.EXPECT().ListActivePlatforms().Return(platforms, nil)

	var captured []*domain.RankingRow
	rankingRepo.EXPECT().
		ReplaceSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time, rows []*domain.RankingRow) error {
			captured = rows
			return nil
		})

	date := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	result, err := service.Recalculate(context.Background(), true, &date)

	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", result.CalculationDate)
	assert.Equal(t, 2, result.PlatformRows)
	assert.Equal(t, 2, result.CombinedRows)
	assert.True(t, result.Published)

	// Todas as linhas vão juntas para a mesma transação
	require.Len(t, captured, 4)
	for _, row := range captured {
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), row.CalculationDate)
		assert.True(t, row.IsPublished)
	}
}

func TestRecalculateUnpublished(t *testing.T) {
	service, rankingRepo, metricRepo, platformRepo := newServiceWithMocks(t)

	metricRepo.EXPECT().GetLatestAccountMetrics().Return([]*domain.LatestAccountMetric{
		metric("inst-a", 1, 1000, 5.0, 1.0),
	}, nil)
	platformRepo.EXPECT().ListActivePlatforms().Return([]*domain.Platform{
		activePlatform(1, "instagram", 1.0),
	}, nil)

	rankingRepo.EXPECT().
		ReplaceSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Time, rows []*domain.RankingRow) error {
			for _, row := range rows {
				assert.False(t, row.IsPublished)
			}
			return nil
		})

	result, err := service.Recalculate(context.Background(), false, nil)

	require.NoError(t, err)
	assert.False(t, result.Published)
}

func TestPreviewDoesNotPersist(t *testing.T) {
	service, _, metricRepo, platformRepo := newServiceWithMocks(t)

	metricRepo.EXPECT().GetLatestAccountMetrics().Return([]*domain.LatestAccountMetric{
		{
			AccountID:       "acc-1",
			InstitutionID:   "inst-a",
			InstitutionName: "Universidade Alfa",
			PlatformID:      1,
			FollowersCount:  1000,
			EngagementRate:  5.0,
		},
		{
			AccountID:       "acc-2",
			InstitutionID:   "inst-b",
			InstitutionName: "Universidade Beta",
			PlatformID:      1,
			FollowersCount:  500,
			EngagementRate:  2.5,
		},
	}, nil)
	platformRepo.EXPECT().ListActivePlatforms().Return([]*domain.Platform{
		activePlatform(1, "instagram", 1.0),
	}, nil)

	// Nenhuma expectativa em ReplaceSnapshot: o preview não escreve nada

	preview, err := service.Preview(10)

	require.NoError(t, err)
	require.Len(t, preview, 2)
	assert.Equal(t, 1, preview[0].RankPosition)
	assert.Equal(t, "Universidade Alfa", preview[0].Name)
	assert.Equal(t, 100.0, preview[0].Score)
	assert.Equal(t, "Universidade Beta", preview[1].Name)
	assert.Equal(t, 50.0, preview[1].Score)
}

func TestPreviewNegativeLimit(t *testing.T) {
	service, _, metricRepo, platformRepo := newServiceWithMocks(t)

	metricRepo.EXPECT().GetLatestAccountMetrics().Return([]*domain.LatestAccountMetric{
		metric("inst-a", 1, 1000, 5.0, 1.0),
	}, nil)
	platformRepo.EXPECT().ListActivePlatforms().Return([]*domain.Platform{
		activePlatform(1, "instagram", 1.0),
	}, nil)

	preview, err := service.Preview(-1)

	require.NoError(t, err)
	assert.Empty(t, preview)
}

func TestGetCombinedRankingWithoutSnapshot(t *testing.T) {
	service, rankingRepo, _, _ := newServiceWithMocks(t)

	rankingRepo.EXPECT().
		LatestPublishedDate(domain.RankingTypeCombined, nil).
		Return(nil, nil)

	entries, pagination, err := service.GetCombinedRanking(domain.RankingFilters{Page: 1, Limit: 50})

	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, 0, pagination.TotalCount)
}

func TestGetCombinedRankingUsesLatestDate(t *testing.T) {
	service, rankingRepo, _, _ := newServiceWithMocks(t)

	latest := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	filters := domain.RankingFilters{Page: 1, Limit: 50}

	rankingRepo.EXPECT().
		LatestPublishedDate(domain.RankingTypeCombined, nil).
		Return(&latest, nil)
	rankingRepo.EXPECT().
		ListCombined(latest, filters).
		Return([]*domain.CombinedRankingEntry{
			{RankPosition: 1, Score: 87.5, InstitutionID: "inst-a", Name: "Universidade Alfa"},
		}, 1, nil)

	entries, pagination, err := service.GetCombinedRanking(filters)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "inst-a", entries[0].InstitutionID)
	assert.Equal(t, 1, pagination.TotalCount)
	assert.Equal(t, 1, pagination.TotalPages)
}

func TestGetPlatformRankingUnknownPlatform(t *testing.T) {
	service, _, _, platformRepo := newServiceWithMocks(t)

	platformRepo.EXPECT().GetByName("orkut").Return(nil, nil)

	_, _, _, err := service.GetPlatformRanking("orkut", 1, 50)

	assert.ErrorIs(t, err, ErrPlatformNotFound)
}

func TestGetTopInstitutionsWithoutSnapshot(t *testing.T) {
	service, rankingRepo, _, _ := newServiceWithMocks(t)

	rankingRepo.EXPECT().
		LatestPublishedDate(domain.RankingTypeCombined, nil).
		Return(nil, nil)

	top, err := service.GetTopInstitutions(10)

	require.NoError(t, err)
	assert.Empty(t, top)
}
