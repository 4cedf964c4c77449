// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/sociallearn/index-api/internal/config"
	"github.com/sociallearn/index-api/internal/usecases/ranking"
)

// RankingRecalcConfig representa a configuração do agendador de recálculo do ranking
type RankingRecalcConfig struct {
	CronSchedule string
	Enabled      bool
	Publish      bool
}

// RankingRecalcService gerencia o agendamento e a execução do recálculo
// periódico do ranking. Apenas um recálculo roda por vez; disparos
// concorrentes (agendado ou manual) são ignorados.
type RankingRecalcService struct {
	scheduler           *gocron.Scheduler
	config              RankingRecalcConfig
	rankerService       ranking.Ranker
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewRankingRecalcService cria uma nova instância do serviço de recálculo
func NewRankingRecalcService(rankerService ranking.Ranker, appConfig *config.Config) *RankingRecalcService {
	recalcConfig := RankingRecalcConfig{
		CronSchedule: appConfig.RankingSync.CronSchedule,
		Enabled:      appConfig.RankingSync.Enabled,
		Publish:      appConfig.RankingSync.Publish,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": recalcConfig.CronSchedule,
		"enabled":       recalcConfig.Enabled,
		"publish":       recalcConfig.Publish,
	}).Info("Configuração do agendador de recálculo do ranking carregada")

	return &RankingRecalcService{
		scheduler:     gocron.NewScheduler(time.UTC),
		config:        recalcConfig,
		rankerService: rankerService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *RankingRecalcService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recálculo agendado do ranking desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recálculo do ranking")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.recalculate()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo do ranking: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recálculo do ranking")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RankingRecalcService) recalculate() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo do ranking já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	result, err := s.rankerService.Recalculate(context.Background(), s.config.Publish, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro no recálculo agendado do ranking")

		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()
		return
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"calculation_date": result.CalculationDate,
		"platform_rows":    result.PlatformRows,
		"combined_rows":    result.CombinedRows,
		"published":        result.Published,
	}).Info("Recálculo agendado do ranking concluído")
}

// TriggerManualSync inicia manualmente um recálculo do ranking
func (s *RankingRecalcService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo do ranking já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual do ranking")
	go s.recalculate()
}

// GetStatus retorna o estado atual do agendador para diagnóstico
func (s *RankingRecalcService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"publish":       s.config.Publish,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}

	if !s.lastSyncCompletedAt.IsZero() {
		status["last_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	if s.lastSyncError != "" {
		status["last_error"] = s.lastSyncError
	}

	return status
}
