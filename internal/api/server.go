package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/sociallearn/index-api/infrastructure/repository"
	"github.com/sociallearn/index-api/internal/api/handler"
	"github.com/sociallearn/index-api/internal/api/handler/router"
	"github.com/sociallearn/index-api/internal/config"
	"github.com/sociallearn/index-api/internal/scheduler"
	"github.com/sociallearn/index-api/internal/usecases/authenticating"
	"github.com/sociallearn/index-api/internal/usecases/blogging"
	"github.com/sociallearn/index-api/internal/usecases/institution"
	"github.com/sociallearn/index-api/internal/usecases/media"
	"github.com/sociallearn/index-api/internal/usecases/metricsimport"
	"github.com/sociallearn/index-api/internal/usecases/ranking"
	"github.com/sociallearn/index-api/internal/usecases/sitesettings"
	"github.com/sociallearn/index-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	authenticator authenticating.Authenticator,
	institutionService institution.Institutioner,
	importerService metricsimport.Importer,
	rankerService ranking.Ranker,
	bloggerService blogging.Blogger,
	settingsService sitesettings.Settings,
	uploaderService media.Uploader,
	platformRepo repository.PlatformRepository,
	dashboardRepo repository.DashboardRepository,
	rankingRecalcService *scheduler.RankingRecalcService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		RankingRecalcService: rankingRecalcService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Institutions(institutionService)...),
		router.WithRoutes(handler.Metrics(importerService)...),
		router.WithRoutes(handler.Rankings(rankerService)...),
		router.WithRoutes(handler.Platforms(platformRepo)...),
		router.WithRoutes(handler.Blog(bloggerService)...),
		router.WithRoutes(handler.SiteSettings(settingsService)...),
		router.WithRoutes(handler.Uploads(uploaderService)...),
		router.WithRoutes(handler.Dashboard(dashboardRepo)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
