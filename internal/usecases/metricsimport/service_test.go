package metricsimport

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sociallearn/index-api/infrastructure/repository/mocks"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newImporterWithMock(t *testing.T) (Importer, *mocks.MockMetricRepository) {
	ctrl := gomock.NewController(t)
	metricRepo := mocks.NewMockMetricRepository(ctrl)

	return NewImporterService(metricRepo), metricRepo
}

func TestAddMetric(t *testing.T) {
	service, metricRepo := newImporterWithMock(t)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	metricRepo.EXPECT().ExistsByAccountAndDate("acc-1", date).Return(false, nil)
	metricRepo.EXPECT().
		CreateMetric(gomock.Any()).
		DoAndReturn(func(sample *domain.MetricSample) (*domain.MetricSample, error) {
			assert.Equal(t, "acc-1", sample.AccountID)
			assert.Equal(t, int64(1000), sample.FollowersCount)
			assert.Equal(t, 7, sample.CreatedBy)
			sample.ID = 42
			return sample, nil
		})

	sample, err := service.AddMetric(domain.CreateMetricRequest{
		AccountID:      "acc-1",
		FollowersCount: 1000,
		EngagementRate: 4.5,
		DataDate:       "2025-06-01",
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, 42, sample.ID)
}

func TestAddMetricDuplicate(t *testing.T) {
	service, metricRepo := newImporterWithMock(t)

	metricRepo.EXPECT().ExistsByAccountAndDate("acc-1", gomock.Any()).Return(true, nil)

	_, err := service.AddMetric(domain.CreateMetricRequest{
		AccountID: "acc-1",
		DataDate:  "2025-06-01",
	}, 7)

	assert.ErrorIs(t, err, ErrDuplicateMetric)
}

func TestAddMetricValidation(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.CreateMetricRequest
		expected error
	}{
		{
			name:     "sem conta",
			req:      domain.CreateMetricRequest{DataDate: "2025-06-01"},
			expected: ErrMissingAccount,
		},
		{
			name:     "data inválida",
			req:      domain.CreateMetricRequest{AccountID: "acc-1", DataDate: "01/06/2025"},
			expected: ErrInvalidDate,
		},
		{
			name:     "data ausente",
			req:      domain.CreateMetricRequest{AccountID: "acc-1"},
			expected: ErrInvalidDate,
		},
		{
			name:     "seguidores negativos",
			req:      domain.CreateMetricRequest{AccountID: "acc-1", DataDate: "2025-06-01", FollowersCount: -1},
			expected: ErrNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newImporterWithMock(t)

			_, err := service.AddMetric(tt.req, 1)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestImportCSV(t *testing.T) {
	service, metricRepo := newImporterWithMock(t)

	csvData := strings.Join([]string{
		"account_id,data_date,followers_count,engagement_rate,monthly_growth,total_engagement",
		"acc-1,2025-06-01,1000,4.5,1.2,500",
		"acc-2,2025-06-01,2000,3.1,0.8,900",
		"acc-desconhecida,2025-06-01,10,1.0,0,5",
		"acc-1,data-ruim,1000,4.5,1.2,500",
		"acc-2,2025-06-02,-5,3.1,0.8,900",
	}, "\n")

	metricRepo.EXPECT().ListAccountIDs().Return(map[string]bool{"acc-1": true, "acc-2": true}, nil)
	metricRepo.EXPECT().
		BulkInsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, samples []*domain.MetricSample) (int, error) {
			require.Len(t, samples, 2)
			// Uma das duas já existia no banco
			return 1, nil
		})

	result, err := service.ImportCSV(context.Background(), strings.NewReader(csvData), 7)

	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalRows)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Equal(t, 3, result.ErrorCount)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, 4, result.Errors[0].Line)
	assert.Contains(t, result.Errors[0].Error, "acc-desconhecida")
}

func TestImportCSVWithoutOptionalColumns(t *testing.T) {
	service, metricRepo := newImporterWithMock(t)

	csvData := strings.Join([]string{
		"account_id,data_date,followers_count,engagement_rate",
		"acc-1,2025-06-01,1000,4.5",
	}, "\n")

	metricRepo.EXPECT().ListAccountIDs().Return(map[string]bool{"acc-1": true}, nil)
	metricRepo.EXPECT().
		BulkInsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, samples []*domain.MetricSample) (int, error) {
			require.Len(t, samples, 1)
			assert.Equal(t, 0.0, samples[0].MonthlyGrowth)
			assert.Equal(t, int64(0), samples[0].TotalEngagement)
			return 1, nil
		})

	result, err := service.ImportCSV(context.Background(), strings.NewReader(csvData), 7)

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 0, result.ErrorCount)
}

func TestImportCSVMissingColumn(t *testing.T) {
	service, _ := newImporterWithMock(t)

	csvData := "account_id,followers_count\nacc-1,1000"

	_, err := service.ImportCSV(context.Background(), strings.NewReader(csvData), 7)

	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestImportCSVErrorLimit(t *testing.T) {
	service, metricRepo := newImporterWithMock(t)

	lines := []string{"account_id,data_date,followers_count,engagement_rate,monthly_growth,total_engagement"}
	for i := 0; i < 15; i++ {
		lines = append(lines, "acc-inexistente,2025-06-01,100,1.0,0,10")
	}

	metricRepo.EXPECT().ListAccountIDs().Return(map[string]bool{}, nil)

	result, err := service.ImportCSV(context.Background(), strings.NewReader(strings.Join(lines, "\n")), 7)

	require.NoError(t, err)
	assert.Equal(t, 15, result.ErrorCount)
	assert.Len(t, result.Errors, 10, "apenas os primeiros erros são reportados")
}
