package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/sqlite"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/generating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/loading"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
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

	conn := sqliteconn(ctx, cfg.Database)
	defer conn.Close()

	generator := generating.NewService()
	salesRepo := repository.NewSalesRepository(conn, generator, cfg.Seed)

	// Semeadura idempotente: cria o schema e popula o ledger sintético na
	// primeira subida; execuções seguintes apenas constatam os dados
	if err := salesRepo.EnsureSeeded(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao semear o banco de vendas")
	}

	ledgerService := loading.NewService(
		salesRepo,
		time.Duration(cfg.LedgerCache.TTLSeconds)*time.Second,
	)

	dashboardService := dashboarding.NewService(
		ledgerService,
		filtering.NewService(),
		aggregating.NewService(),
	)

	exportService := exporting.NewService(
		dashboardService,
		aggregating.NewService(),
		reporting.NewService(),
	)

	// Inicia o agendador de recarga do ledger em background
	ledgerRefreshService := scheduler.NewLedgerRefreshService(ledgerService, cfg)
	if err := ledgerRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do ledger")
	} else {
		logrus.Info("Agendador de recarga do ledger iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, exportService)
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

// sqliteconn abre o arquivo do banco local
func sqliteconn(ctx context.Context, dbConfig config.Database) *sqlite.Connection {
	conn, err := sqlite.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o banco SQLite")
	}

	logrus.WithField("path", dbConfig.Path).Info("Conexão com SQLite estabelecida com sucesso")
	return conn
}
