package ranking

import (
	"testing"
	"time"

	"github.com/sociallearn/index-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activePlatform(id int, name string, weight float64) *domain.Platform {
	return &domain.Platform{ID: id, Name: name, Weight: weight, IsActive: true}
}

func metric(institutionID string, platformID int, followers int64, engagement, growth float64) *domain.LatestAccountMetric {
	return &domain.LatestAccountMetric{
		AccountID:      institutionID + "-" + string(rune('0'+platformID)),
		InstitutionID:  institutionID,
		PlatformID:     platformID,
		FollowersCount: followers,
		EngagementRate: engagement,
		MonthlyGrowth:  growth,
	}
}

func calcDate() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestBuildSnapshotNormalization(t *testing.T) {
	// Instituição A lidera seguidores (100k) e engajamento; B tem metade de
	// ambos. A deve somar 100 e B deve somar 50.
	metrics := []*domain.LatestAccountMetric{
		metric("inst-a", 1, 100000, 8.0, 2.0),
		metric("inst-b", 1, 50000, 4.0, 1.0),
	}
	platforms := []*domain.Platform{activePlatform(1, "instagram", 1.0)}

	platformRows, combinedRows := BuildSnapshot(metrics, platforms, calcDate(), true)

	require.Len(t, platformRows, 2)
	require.Len(t, combinedRows, 2)

	first := platformRows[0]
	assert.Equal(t, "inst-a", first.InstitutionID)
	assert.Equal(t, 1, first.RankPosition)
	assert.InDelta(t, 50.0, first.FollowerScore, 0.0001)
	assert.InDelta(t, 50.0, first.EngagementScore, 0.0001)
	assert.InDelta(t, 100.0, first.Score, 0.0001)

	second := platformRows[1]
	assert.Equal(t, "inst-b", second.InstitutionID)
	assert.Equal(t, 2, second.RankPosition)
	assert.InDelta(t, 25.0, second.FollowerScore, 0.0001)
	assert.InDelta(t, 25.0, second.EngagementScore, 0.0001)
	assert.InDelta(t, 50.0, second.Score, 0.0001)
}

func TestBuildSnapshotGrowthNotInScore(t *testing.T) {
	// Crescimentos radicalmente diferentes não mudam o score: o growth_score
	// é registrado, mas não compõe a soma
	base := []*domain.LatestAccountMetric{
		metric("inst-a", 1, 1000, 5.0, 0.0),
		metric("inst-b", 1, 500, 2.5, 0.0),
	}
	boosted := []*domain.LatestAccountMetric{
		metric("inst-a", 1, 1000, 5.0, 90.0),
		metric("inst-b", 1, 500, 2.5, 1.0),
	}
	platforms := []*domain.Platform{activePlatform(1, "instagram", 1.0)}

	baseRows, _ := BuildSnapshot(base, platforms, calcDate(), true)
	boostedRows, _ := BuildSnapshot(boosted, platforms, calcDate(), true)

	require.Len(t, baseRows, 2)
	require.Len(t, boostedRows, 2)

	for i := range baseRows {
		assert.Equal(t, baseRows[i].InstitutionID, boostedRows[i].InstitutionID)
		assert.InDelta(t, baseRows[i].Score, boostedRows[i].Score, 0.0001)
	}

	assert.InDelta(t, 50.0, boostedRows[0].GrowthScore, 0.0001)
}

func TestBuildSnapshotZeroMax(t *testing.T) {
	// Todas as contas com engajamento zero: o sub-score é zero para todas,
	// sem divisão por zero
	metrics := []*domain.LatestAccountMetric{
		metric("inst-a", 1, 1000, 0.0, 0.0),
		metric("inst-b", 1, 2000, 0.0, 0.0),
	}
	platforms := []*domain.Platform{activePlatform(1, "instagram", 1.0)}

	platformRows, _ := BuildSnapshot(metrics, platforms, calcDate(), true)

	require.Len(t, platformRows, 2)
	for _, row := range platformRows {
		assert.Zero(t, row.EngagementScore)
		assert.Zero(t, row.GrowthScore)
	}

	// B lidera seguidores e fica em primeiro só com o follower_score
	assert.Equal(t, "inst-b", platformRows[0].InstitutionID)
	assert.InDelta(t, 50.0, platformRows[0].Score, 0.0001)
}

func TestBuildSnapshotContiguousRanks(t *testing.T) {
	metrics := []*domain.LatestAccountMetric{
		metric("inst-a", 1, 100, 1.0, 0),
		metric("inst-b", 1, 200, 2.0, 0),
		metric("inst-c", 1, 300, 3.0, 0),
		metric("inst-d", 1, 400, 4.0, 0),
		metric("inst-a", 2, 100, 1.0, 0),
		metric("inst-b", 2, 50, 0.5, 0),
	}
	platforms := []*domain.Platform{
		activePlatform(1, "instagram", 1.0),
		activePlatform(2, "tiktok", 1.5),
	}

	platformRows, combinedRows := BuildSnapshot(metrics, platforms, calcDate(), true)

	byPlatform := make(map[int][]*domain.RankingRow)
	for _, row := range platformRows {
		require.NotNil(t, row.PlatformID)
		byPlatform[*row.PlatformID] = append(byPlatform[*row.PlatformID], row)
	}

	for _, rows := range byPlatform {
		for i, row := range rows {
			assert.Equal(t, i+1, row.RankPosition)
		}
	}

	for i, row := range combinedRows {
		assert.Equal(t, i+1, row.RankPosition)
		assert.Nil(t, row.PlatformID)
		assert.Equal(t, domain.RankingTypeCombined, row.RankingType)
		assert.Zero(t, row.FollowerScore)
		assert.Zero(t, row.EngagementScore)
	}
}

func TestBuildSnapshotTieBreakByInstitutionID(t *testing.T) {
	// Scores idênticos: o desempate é pelo id da instituição, em ordem
	// crescente, para que o resultado seja estável entre execuções
	metrics := []*domain.LatestAccountMetric{
		metric("inst-b", 1, 1000, 5.0, 0),
		metric("inst-a", 1, 1000, 5.0, 0),
	}
	platforms := []*domain.Platform{activePlatform(1, "instagram", 1.0)}

	platformRows, combinedRows := BuildSnapshot(metrics, platforms, calcDate(), true)

	require.Len(t, platformRows, 2)
	assert.Equal(t, "inst-a", platformRows[0].InstitutionID)
	assert.Equal(t, 1, platformRows[0].RankPosition)
	assert.Equal(t, "inst-b", platformRows[1].InstitutionID)
	assert.Equal(t, 2, platformRows[1].RankPosition)

	require.Len(t, combinedRows, 2)
	assert.Equal(t, "inst-a", combinedRows[0].InstitutionID)
}

func TestBuildSnapshotWeightDominance(t *testing.T) {
	// A domina a plataforma 1 e B domina a plataforma 2 com scores iguais.
	// Com peso maior na plataforma 2, B lidera o combinado.
	metrics := []*domain.LatestAccountMetric{
		metric("inst-a", 1, 1000, 5.0, 0),
		metric("inst-b", 1, 10, 0.1, 0),
		metric("inst-a", 2, 10, 0.1, 0),
		metric("inst-b", 2, 1000, 5.0, 0),
	}
	platforms := []*domain.Platform{
		activePlatform(1, "instagram", 1.0),
		activePlatform(2, "tiktok", 3.0),
	}

	_, combinedRows := BuildSnapshot(metrics, platforms, calcDate(), true)

	require.Len(t, combinedRows, 2)
	assert.Equal(t, "inst-b", combinedRows[0].InstitutionID)
	assert.Equal(t, "inst-a", combinedRows[1].InstitutionID)
}

func TestBuildSnapshotInactivePlatformExcludedFromCombined(t *testing.T) {
	// A plataforma 2 está inativa: suas linhas por plataforma continuam
	// existindo, mas o combinado ignora os scores dela. A instituição C,
	// presente apenas na plataforma inativa, sai do combinado.
	metrics := []*domain.LatestAccountMetric{
		metric("inst-a", 1, 1000, 5.0, 0),
		metric("inst-b", 1, 500, 2.5, 0),
		metric("inst-c", 2, 9000, 9.0, 0),
	}
	platforms := []*domain.Platform{activePlatform(1, "instagram", 1.0)}

	platformRows, combinedRows := BuildSnapshot(metrics, platforms, calcDate(), true)

	platformIDs := make(map[int]bool)
	for _, row := range platformRows {
		platformIDs[*row.PlatformID] = true
	}
	assert.True(t, platformIDs[1])
	assert.True(t, platformIDs[2], "linhas por plataforma existem mesmo para plataforma inativa")

	require.Len(t, combinedRows, 2)
	for _, row := range combinedRows {
		assert.NotEqual(t, "inst-c", row.InstitutionID)
	}
}

func TestBuildSnapshotDeterministic(t *testing.T) {
	metrics := []*domain.LatestAccountMetric{
		metric("inst-a", 1, 123, 1.2, 0.5),
		metric("inst-b", 1, 456, 3.4, 0.1),
		metric("inst-c", 2, 789, 5.6, 0.9),
		metric("inst-a", 2, 321, 2.1, 0.2),
	}
	platforms := []*domain.Platform{
		activePlatform(1, "instagram", 1.0),
		activePlatform(2, "tiktok", 1.5),
	}

	firstPlatform, firstCombined := BuildSnapshot(metrics, platforms, calcDate(), true)
	secondPlatform, secondCombined := BuildSnapshot(metrics, platforms, calcDate(), true)

	require.Equal(t, len(firstPlatform), len(secondPlatform))
	for i := range firstPlatform {
		assert.Equal(t, firstPlatform[i].InstitutionID, secondPlatform[i].InstitutionID)
		assert.Equal(t, firstPlatform[i].RankPosition, secondPlatform[i].RankPosition)
		assert.Equal(t, firstPlatform[i].Score, secondPlatform[i].Score)
	}

	require.Equal(t, len(firstCombined), len(secondCombined))
	for i := range firstCombined {
		assert.Equal(t, firstCombined[i].InstitutionID, secondCombined[i].InstitutionID)
		assert.Equal(t, firstCombined[i].RankPosition, secondCombined[i].RankPosition)
	}
}

func TestBuildSnapshotEmptyInput(t *testing.T) {
	platformRows, combinedRows := BuildSnapshot(nil, nil, calcDate(), true)

	assert.Empty(t, platformRows)
	assert.Empty(t, combinedRows)
}
