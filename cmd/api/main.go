package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kol-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/kol-manager-api/infrastructure/integrator/socialdata"
	"github.com/vfg2006/kol-manager-api/infrastructure/integrator/socialdata/statsclient"
	"github.com/vfg2006/kol-manager-api/infrastructure/repository"
	"github.com/vfg2006/kol-manager-api/internal/api"
	"github.com/vfg2006/kol-manager-api/internal/config"
	"github.com/vfg2006/kol-manager-api/internal/domain"
	"github.com/vfg2006/kol-manager-api/internal/scheduler"
	"github.com/vfg2006/kol-manager-api/internal/usecases/analyzing"
	"github.com/vfg2006/kol-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/kol-manager-api/internal/usecases/branding"
	"github.com/vfg2006/kol-manager-api/internal/usecases/matching"
	"github.com/vfg2006/kol-manager-api/internal/usecases/normalizing"
	"github.com/vfg2006/kol-manager-api/internal/usecases/standardizing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	kolReportRepo := repository.NewKolReportRepository(pgConn)
	brandRepo := repository.NewBrandProfileRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	statsClient := statsclient.NewClient(cfg)
	socialDataIntegrator := socialdata.New(cfg, statsClient)

	// Monta o motor de padronização: normalizador, avaliador e pipeline
	scoringWeights := domain.DefaultScoringWeights()
	if err := scoringWeights.Validate(); err != nil {
		logrus.WithError(err).Fatal("Pesos de avaliação inválidos")
	}

	matchWeights := domain.DefaultMatchWeights()
	if err := matchWeights.Validate(); err != nil {
		logrus.WithError(err).Fatal("Pesos de compatibilidade inválidos")
	}

	normalizer := normalizing.NewService()
	evaluator := standardizing.NewEvaluator(scoringWeights)
	standardizer := standardizing.NewService(normalizer, evaluator)

	analyzerService := analyzing.NewService(cfg.Analysis, socialDataIntegrator, standardizer, kolReportRepo)
	matcherService := matching.NewService(matchWeights)
	brandingService := branding.NewService(brandRepo)

	// Inicializa o agendador de renovação de relatórios
	reportRefreshService := scheduler.NewReportRefreshService(
		kolReportRepo,
		analyzerService,
		cfg,
	)

	// Inicia o agendador em background
	if err := reportRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de renovação de relatórios")
	} else {
		logrus.Info("Agendador de renovação de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzerService,
		matcherService,
		brandingService,
		authenticator,
		reportRefreshService,
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

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
