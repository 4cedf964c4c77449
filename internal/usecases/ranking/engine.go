// Package ranking contém o motor de recálculo e as consultas públicas do
// ranking de influência
package ranking

import (
	"sort"
	"time"

	"github.com/sociallearn/index-api/internal/domain"
)

// subScoreCeiling é o teto de cada sub-score normalizado. Como o score de
// uma plataforma soma dois sub-scores, o máximo teórico por plataforma é 100.
const subScoreCeiling = 50.0

type accountScore struct {
	institutionID   string
	platformID      int
	score           float64
	followerScore   float64
	engagementScore float64
	growthScore     float64
}

type platformMaxes struct {
	followers  float64
	engagement float64
	growth     float64
}

// BuildSnapshot calcula o snapshot completo de uma data a partir das
// métricas mais recentes de cada conta. É uma função pura: recebe os dados,
// devolve as linhas por plataforma e as combinadas, e não toca no banco.
//
// A normalização é relativa ao líder de cada plataforma: quem tem o maior
// valor bruto recebe o sub-score cheio e os demais recebem a proporção.
// Quando o máximo de uma dimensão é zero, todos recebem zero nessa dimensão
// (nunca há divisão por zero).
//
// O growth_score é calculado e armazenado, mas não entra na composição de
// nenhum score. Fica registrado apenas como informação.
func BuildSnapshot(
	metrics []*domain.LatestAccountMetric,
	activePlatforms []*domain.Platform,
	calculationDate time.Time,
	publish bool,
) (platformRows, combinedRows []*domain.RankingRow) {
	scoresByPlatform := scoreByPlatform(metrics)

	platformIDs := make([]int, 0, len(scoresByPlatform))
	for platformID := range scoresByPlatform {
		platformIDs = append(platformIDs, platformID)
	}
	sort.Ints(platformIDs)

	platformRows = make([]*domain.RankingRow, 0)
	for _, platformID := range platformIDs {
		scores := scoresByPlatform[platformID]
		sortScores(scores)

		for position, entry := range scores {
			pid := platformID
			platformRows = append(platformRows, &domain.RankingRow{
				InstitutionID:   entry.institutionID,
				PlatformID:      &pid,
				RankingType:     domain.RankingTypePlatformSpecific,
				RankPosition:    position + 1,
				Score:           entry.score,
				FollowerScore:   entry.followerScore,
				EngagementScore: entry.engagementScore,
				GrowthScore:     entry.growthScore,
				CalculationDate: calculationDate,
				IsPublished:     publish,
			})
		}
	}

	combinedRows = buildCombined(scoresByPlatform, activePlatforms, calculationDate, publish)

	return platformRows, combinedRows
}

// scoreByPlatform agrupa as métricas por plataforma e normaliza cada conta
// contra o líder da sua plataforma
func scoreByPlatform(metrics []*domain.LatestAccountMetric) map[int][]*accountScore {
	maxes := make(map[int]*platformMaxes)
	for _, metric := range metrics {
		max, ok := maxes[metric.PlatformID]
		if !ok {
			max = &platformMaxes{}
			maxes[metric.PlatformID] = max
		}

		if followers := float64(metric.FollowersCount); followers > max.followers {
			max.followers = followers
		}

		if metric.EngagementRate > max.engagement {
			max.engagement = metric.EngagementRate
		}

		if metric.MonthlyGrowth > max.growth {
			max.growth = metric.MonthlyGrowth
		}
	}

	scores := make(map[int][]*accountScore)
	for _, metric := range metrics {
		max := maxes[metric.PlatformID]

		followerScore := normalize(float64(metric.FollowersCount), max.followers)
		engagementScore := normalize(metric.EngagementRate, max.engagement)
		growthScore := normalize(metric.MonthlyGrowth, max.growth)

		scores[metric.PlatformID] = append(scores[metric.PlatformID], &accountScore{
			institutionID:   metric.InstitutionID,
			platformID:      metric.PlatformID,
			score:           followerScore + engagementScore,
			followerScore:   followerScore,
			engagementScore: engagementScore,
			growthScore:     growthScore,
		})
	}

	return scores
}

// normalize projeta o valor bruto na escala 0..50, relativa ao máximo da
// plataforma. Máximo zero resulta em zero para todos.
func normalize(raw, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return (raw / max) * subScoreCeiling
}

// buildCombined compõe o ranking combinado: a soma ponderada dos scores por
// plataforma, considerando apenas plataformas ativas. Instituições presentes
// somente em plataformas inativas ficam de fora.
func buildCombined(
	scoresByPlatform map[int][]*accountScore,
	activePlatforms []*domain.Platform,
	calculationDate time.Time,
	publish bool,
) []*domain.RankingRow {
	weights := make(map[int]float64, len(activePlatforms))
	for _, platform := range activePlatforms {
		weights[platform.ID] = platform.Weight
	}

	totals := make(map[string]float64)
	for platformID, scores := range scoresByPlatform {
		weight, active := weights[platformID]
		if !active {
			continue
		}

		for _, entry := range scores {
			totals[entry.institutionID] += entry.score * weight
		}
	}

	combined := make([]*accountScore, 0, len(totals))
	for institutionID, total := range totals {
		combined = append(combined, &accountScore{
			institutionID: institutionID,
			score:         total,
		})
	}
	sortScores(combined)

	rows := make([]*domain.RankingRow, 0, len(combined))
	for position, entry := range combined {
		rows = append(rows, &domain.RankingRow{
			InstitutionID:   entry.institutionID,
			PlatformID:      nil,
			RankingType:     domain.RankingTypeCombined,
			RankPosition:    position + 1,
			Score:           entry.score,
			CalculationDate: calculationDate,
			IsPublished:     publish,
		})
	}

	return rows
}

// sortScores ordena por score decrescente com desempate determinístico pelo
// id da instituição, garantindo posições estáveis entre execuções
func sortScores(scores []*accountScore) {
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].institutionID < scores[j].institutionID
	})
}
