package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sociallearn/index-api/internal/config"
	"github.com/sociallearn/index-api/internal/domain"
	"github.com/sociallearn/index-api/internal/usecases/ranking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRecalcService(t *testing.T, enabled bool) (*RankingRecalcService, *mocks.MockRanker) {
	ctrl := gomock.NewController(t)
	ranker := mocks.NewMockRanker(ctrl)

	appConfig := &config.Config{
		RankingSync: config.RankingSync{
			CronSchedule: "0 2 * * *",
			Enabled:      enabled,
			Publish:      true,
		},
	}

	return NewRankingRecalcService(ranker, appConfig), ranker
}

func TestStartDisabled(t *testing.T) {
	service, _ := newRecalcService(t, false)

	// Desabilitado: nada é agendado e nenhum recálculo acontece
	err := service.Start(context.Background())

	require.NoError(t, err)
	assert.False(t, service.GetStatus()["running"].(bool))
}

func TestTriggerManualSync(t *testing.T) {
	service, ranker := newRecalcService(t, false)

	done := make(chan struct{})
	ranker.EXPECT().
		Recalculate(gomock.Any(), true, nil).
		DoAndReturn(func(context.Context, bool, *time.Time) (*domain.RecalculationResult, error) {
			defer close(done)
			return &domain.RecalculationResult{CalculationDate: "2025-06-01"}, nil
		})

	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recálculo manual não executou")
	}
}

func TestTriggerManualSyncSingleFlight(t *testing.T) {
	service, ranker := newRecalcService(t, false)

	started := make(chan struct{})
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	ranker.EXPECT().
		Recalculate(gomock.Any(), true, nil).
		DoAndReturn(func(context.Context, bool, *time.Time) (*domain.RecalculationResult, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			close(started)
			<-release
			return &domain.RecalculationResult{}, nil
		}).
		Times(1)

	service.TriggerManualSync()
	<-started

	// Com um recálculo em andamento, novos disparos são ignorados
	service.TriggerManualSync()
	service.TriggerManualSync()

	assert.True(t, service.GetStatus()["running"].(bool))

	close(release)

	assert.Eventually(t, func() bool {
		return !service.GetStatus()["running"].(bool)
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestGetStatusAfterFailure(t *testing.T) {
	service, ranker := newRecalcService(t, false)

	done := make(chan struct{})
	ranker.EXPECT().
		Recalculate(gomock.Any(), true, nil).
		DoAndReturn(func(context.Context, bool, *time.Time) (*domain.RecalculationResult, error) {
			defer close(done)
			return nil, assert.AnError
		})

	service.TriggerManualSync()
	<-done

	assert.Eventually(t, func() bool {
		status := service.GetStatus()
		lastError, ok := status["last_error"].(string)
		return ok && lastError != ""
	}, 2*time.Second, 10*time.Millisecond)
}
