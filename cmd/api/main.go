package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/boost-manager-api/infrastructure/archive"
	"github.com/vfg2006/boost-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent"
	"github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/revcontentclient"
	"github.com/vfg2006/boost-manager-api/infrastructure/repository"
	"github.com/vfg2006/boost-manager-api/internal/api"
	"github.com/vfg2006/boost-manager-api/internal/config"
	"github.com/vfg2006/boost-manager-api/internal/scheduler"
	"github.com/vfg2006/boost-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/boost-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/boost-manager-api/internal/usecases/reporting"
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

	// Grava os logs também em arquivo quando configurado
	if cfg.App.LogFileDir != "" {
		configureLogFile(cfg.App.LogFileDir)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	campaignRepo := repository.NewCampaignRepository(pgConn)
	snapshotRepo := repository.NewStatsSnapshotRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	renderClient := config.NewRenderClient(cfg)

	revcontentClient := revcontentclient.NewClient(cfg)
	revcontentIntegrator := revcontent.New(cfg, revcontentClient)

	statsArchiver := archive.New(cfg)

	reportService := reporting.NewService(
		campaignRepo,
		snapshotRepo,
		revcontentIntegrator,
		statsArchiver,
	)

	campaignService := campaigning.NewService(
		campaignRepo,
		revcontentIntegrator,
		reportService,
		renderClient,
		cfg,
	)

	// Inicializa o agendador de coleta periódica de performance
	performanceSyncService := scheduler.NewPerformanceSyncService(
		campaignRepo,
		reportService,
		cfg,
	)

	// Inicia o agendador em background
	if err := performanceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de performance dos boosts")
	} else {
		logrus.Info("Agendador de sincronização de performance dos boosts iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		campaignService,
		reportService,
		authenticator,
		performanceSyncService, // Serviço de sincronização de performance
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

// configureLogFile adiciona um arquivo de log além da saída padrão
func configureLogFile(dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logrus.Warn("Não foi possível criar o diretório de logs:", err)
		return
	}

	filename := filepath.Join(dir, fmt.Sprintf("boost-manager_%s.log", time.Now().Format("2006-01-02_15-04-05")))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.Warn("Não foi possível criar o arquivo de log:", err)
		return
	}

	logrus.SetOutput(io.MultiWriter(os.Stdout, file))
	logrus.Info("Logs sendo gravados em:", filename)
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
