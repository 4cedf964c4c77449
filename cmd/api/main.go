package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sociallearn/index-api/infrastructure/database/postgres"
	"github.com/sociallearn/index-api/infrastructure/repository"
	"github.com/sociallearn/index-api/internal/api"
	"github.com/sociallearn/index-api/internal/config"
	"github.com/sociallearn/index-api/internal/scheduler"
	"github.com/sociallearn/index-api/internal/usecases/authenticating"
	"github.com/sociallearn/index-api/internal/usecases/blogging"
	"github.com/sociallearn/index-api/internal/usecases/institution"
	"github.com/sociallearn/index-api/internal/usecases/media"
	"github.com/sociallearn/index-api/internal/usecases/metricsimport"
	"github.com/sociallearn/index-api/internal/usecases/ranking"
	"github.com/sociallearn/index-api/internal/usecases/sitesettings"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	institutionRepo := repository.NewInstitutionRepository(pgConn)
	platformRepo := repository.NewPlatformRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	rankingRepo := repository.NewRankingRepository(pgConn)
	blogRepo := repository.NewBlogRepository(pgConn)
	settingsRepo := repository.NewSettingsRepository(pgConn)
	mediaRepo := repository.NewMediaRepository(pgConn)
	dashboardRepo := repository.NewDashboardRepository(pgConn)

	authenticator := authenticating.NewAuthenticatorService(userRepo, cfg.Auth.SecretKey)
	institutionService := institution.NewInstitutionService(institutionRepo, platformRepo)
	importerService := metricsimport.NewImporterService(metricRepo)
	rankerService := ranking.NewRankerService(rankingRepo, metricRepo, platformRepo)
	bloggerService := blogging.NewBloggerService(blogRepo)
	settingsService := sitesettings.NewSettingsService(settingsRepo)
	uploaderService := media.NewUploaderService(mediaRepo, cfg.Upload)

	rankingRecalcService := scheduler.NewRankingRecalcService(rankerService, cfg)

	if err := rankingRecalcService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recálculo do ranking")
	} else {
		logrus.Info("Agendador de recálculo do ranking iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		institutionService,
		importerService,
		rankerService,
		bloggerService,
		settingsService,
		uploaderService,
		platformRepo,
		dashboardRepo,
		rankingRecalcService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
