package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/powerapps-data-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/powerapps-data-pipeline/infrastructure/repository"
	"github.com/vfg2006/powerapps-data-pipeline/internal/config"
	"github.com/vfg2006/powerapps-data-pipeline/internal/scheduler"
	"github.com/vfg2006/powerapps-data-pipeline/internal/usecases/extracting"
	"github.com/vfg2006/powerapps-data-pipeline/internal/usecases/loading"
	"github.com/vfg2006/powerapps-data-pipeline/internal/usecases/pipelining"
	"github.com/vfg2006/powerapps-data-pipeline/internal/usecases/simulating"
	"github.com/vfg2006/powerapps-data-pipeline/internal/usecases/transforming"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	opportunityRepo := repository.NewOpportunityRepository(pgConn)
	feedbackRepo := repository.NewCustomerFeedbackRepository(pgConn)
	inventoryRepo := repository.NewInventoryRepository(pgConn)
	loadHistoryRepo := repository.NewLoadHistoryRepository(pgConn)
	salesSummaryRepo := repository.NewSalesSummaryRepository(pgConn)

	extractService := extracting.NewService()
	transformService := transforming.NewService()
	loadService := loading.NewService(
		opportunityRepo,
		feedbackRepo,
		inventoryRepo,
		loadHistoryRepo,
		salesSummaryRepo,
	)

	pipelineService := pipelining.NewService(
		extractService,
		transformService,
		loadService,
		cfg,
	)

	// Gera exports de amostra quando habilitado (ambiente local)
	if cfg.Simulator.Enabled {
		simulatorService := simulating.NewService(cfg)
		if err := simulatorService.GenerateSampleExports(); err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar exports de amostra")
		}
	}

	// Inicializa o agendador de carga diária
	dailyLoadSyncService := scheduler.NewDailyLoadSyncService(pipelineService, cfg)
	if err := dailyLoadSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de carga diária")
	}

	if cfg.Pipeline.RunOnStartup {
		report, err := pipelineService.Run(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("Erro na execução do pipeline")
		}

		logrus.WithFields(logrus.Fields{
			"run_id":          report.RunID,
			"files_processed": report.FilesProcessed,
			"files_failed":    report.FilesFailed,
			"records_loaded":  report.RecordsLoaded,
			"records_skipped": report.RecordsSkipped,
		}).Info("Pipeline concluído")
	}

	// Com o agendador habilitado o processo fica residente aguardando os disparos
	if cfg.DailyLoadSync.Enabled {
		<-ctx.Done()
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
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
