// Package metricsimport cuida da entrada de métricas: cadastro manual,
// importação em massa via csv e exportação
package metricsimport

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sociallearn/index-api/infrastructure/repository"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/pkg/log"
	"github.com/sociallearn/index-api/pkg/utils"
)

// maxReportedErrors limita quantos erros de linha voltam na resposta da
// importação. O total de erros é sempre contabilizado.
const maxReportedErrors = 10

// requiredColumns são as colunas que o cabeçalho do csv precisa trazer.
// monthly_growth e total_engagement são opcionais: quando ausentes (ou
// vazias), a linha entra com zero nesses campos.
var requiredColumns = []string{
	"account_id",
	"data_date",
	"followers_count",
	"engagement_rate",
}

type Importer interface {
	AddMetric(req domain.CreateMetricRequest, createdBy int) (*domain.MetricSample, error)
	ImportCSV(ctx context.Context, reader io.Reader, createdBy int) (*domain.BulkImportResult, error)
	GetInstitutionMetrics(institutionID, platform string, days int) ([]*domain.InstitutionMetricsByPlatform, error)
	GetPlatformStats() ([]*domain.PlatformStats, error)
	Export(filters domain.MetricExportFilters) ([]*domain.MetricExportRow, error)
}

type importerService struct {
	metricRepository repository.MetricRepository
}

func NewImporterService(metricRepository repository.MetricRepository) Importer {
	return &importerService{
		metricRepository: metricRepository,
	}
}

// AddMetric valida e grava uma única métrica. Uma métrica já existente para
// a mesma conta e data é rejeitada: amostras são fatos imutáveis.
func (s *importerService) AddMetric(req domain.CreateMetricRequest, createdBy int) (*domain.MetricSample, error) {
	if req.AccountID == "" {
		return nil, ErrMissingAccount
	}

	dataDate, err := utils.ParseDate(req.DataDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if req.FollowersCount < 0 || req.EngagementRate < 0 || req.TotalEngagement < 0 {
		return nil, ErrNegativeValue
	}

	exists, err := s.metricRepository.ExistsByAccountAndDate(req.AccountID, *dataDate)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, ErrDuplicateMetric
	}

	sample := &domain.MetricSample{
		AccountID:       req.AccountID,
		FollowersCount:  req.FollowersCount,
		FollowingCount:  req.FollowingCount,
		PostsCount:      req.PostsCount,
		EngagementRate:  req.EngagementRate,
		AvgLikes:        req.AvgLikes,
		AvgComments:     req.AvgComments,
		AvgShares:       req.AvgShares,
		MonthlyGrowth:   req.MonthlyGrowth,
		TotalEngagement: req.TotalEngagement,
		DataDate:        *dataDate,
		CreatedBy:       createdBy,
	}

	return s.metricRepository.CreateMetric(sample)
}

// ImportCSV processa a importação em massa. Linhas inválidas são acumuladas
// como erros sem abortar as demais; as válidas entram em uma única
// transação. Duplicatas de (conta, data) são puladas silenciosamente.
func (s *importerService) ImportCSV(ctx context.Context, reader io.Reader, createdBy int) (*domain.BulkImportResult, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, ErrEmptyFile
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	knownAccounts, err := s.metricRepository.ListAccountIDs()
	if err != nil {
		return nil, err
	}

	result := &domain.BulkImportResult{Errors: []domain.BulkImportRowError{}}
	samples := make([]*domain.MetricSample, 0)

	line := 1
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}

		line++
		result.TotalRows++

		if err != nil {
			result.ErrorCount++
			appendRowError(result, line, "linha malformada")
			continue
		}

		sample, rowErr := parseRow(record, columns, knownAccounts, createdBy)
		if rowErr != "" {
			result.ErrorCount++
			appendRowError(result, line, rowErr)
			continue
		}

		samples = append(samples, sample)
	}

	inserted := 0
	if len(samples) > 0 {
		inserted, err = s.metricRepository.BulkInsert(ctx, samples)
		if err != nil {
			return nil, err
		}
	}

	result.SuccessCount = inserted
	result.SkippedCount = len(samples) - inserted

	log.L.WithContext(ctx).WithFields(log.Fields{
		"total_rows": result.TotalRows,
		"inserted":   result.SuccessCount,
		"skipped":    result.SkippedCount,
		"errors":     result.ErrorCount,
	}).Info("Importação em massa concluída")

	return result, nil
}

func (s *importerService) GetInstitutionMetrics(institutionID, platform string, days int) ([]*domain.InstitutionMetricsByPlatform, error) {
	if days <= 0 {
		days = 30
	}

	since := utils.TruncateToDate(time.Now().UTC().AddDate(0, 0, -days))

	return s.metricRepository.GetInstitutionMetrics(institutionID, platform, since)
}

func (s *importerService) GetPlatformStats() ([]*domain.PlatformStats, error) {
	return s.metricRepository.GetPlatformStats()
}

func (s *importerService) Export(filters domain.MetricExportFilters) ([]*domain.MetricExportRow, error) {
	return s.metricRepository.Export(filters)
}

// mapColumns resolve a posição de cada coluna esperada no cabeçalho,
// aceitando qualquer ordem
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for position, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = position
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	return columns, nil
}

func parseRow(record []string, columns map[string]int, knownAccounts map[string]bool, createdBy int) (*domain.MetricSample, string) {
	field := func(name string) string {
		position, ok := columns[name]
		if !ok || position >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[position])
	}

	accountID := field("account_id")
	if accountID == "" {
		return nil, "account_id ausente"
	}

	if !knownAccounts[accountID] {
		return nil, fmt.Sprintf("conta desconhecida: %s", accountID)
	}

	dataDate, err := time.Parse("2006-01-02", field("data_date"))
	if err != nil {
		return nil, fmt.Sprintf("data inválida: %s", field("data_date"))
	}

	followers, err := strconv.ParseInt(field("followers_count"), 10, 64)
	if err != nil || followers < 0 {
		return nil, fmt.Sprintf("followers_count inválido: %s", field("followers_count"))
	}

	engagement, err := strconv.ParseFloat(field("engagement_rate"), 64)
	if err != nil || engagement < 0 {
		return nil, fmt.Sprintf("engagement_rate inválido: %s", field("engagement_rate"))
	}

	growth := 0.0
	if raw := field("monthly_growth"); raw != "" {
		growth, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Sprintf("monthly_growth inválido: %s", raw)
		}
	}

	totalEngagement := int64(0)
	if raw := field("total_engagement"); raw != "" {
		totalEngagement, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || totalEngagement < 0 {
			return nil, fmt.Sprintf("total_engagement inválido: %s", raw)
		}
	}

	return &domain.MetricSample{
		AccountID:       accountID,
		FollowersCount:  followers,
		EngagementRate:  engagement,
		MonthlyGrowth:   growth,
		TotalEngagement: totalEngagement,
		DataDate:        dataDate,
		CreatedBy:       createdBy,
	}, ""
}

func appendRowError(result *domain.BulkImportResult, line int, message string) {
	if len(result.Errors) >= maxReportedErrors {
		return
	}

	result.Errors = append(result.Errors, domain.BulkImportRowError{
		Line:  line,
		Error: message,
	})
}
