package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/powerapps-data-pipeline/internal/config"
	"github.com/vfg2006/powerapps-data-pipeline/internal/usecases/pipelining"
)

// DailyLoadSyncConfig representa a configuração do agendador de carga diária
type DailyLoadSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DailyLoadSyncService gerencia o agendamento da carga diária do warehouse
type DailyLoadSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyLoadSyncConfig
	pipeline            pipelining.Runner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDailyLoadSyncService cria uma nova instância do serviço de carga diária
func NewDailyLoadSyncService(
	pipeline pipelining.Runner,
	appConfig *config.Config,
) *DailyLoadSyncService {
	syncConfig := DailyLoadSyncConfig{
		CronSchedule: appConfig.DailyLoadSync.CronSchedule,
		SyncEnabled:  appConfig.DailyLoadSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de carga diária carregada")

	return &DailyLoadSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		pipeline:    pipeline,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DailyLoadSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Carga diária agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de carga diária")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDailyLoad(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a carga diária: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de carga diária")
		s.scheduler.Stop()
	}()

	return nil
}

// runDailyLoad executa uma passada do pipeline, ignorando disparos sobrepostos
func (s *DailyLoadSyncService) runDailyLoad(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Carga diária já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando carga diária agendada")

	report, err := s.pipeline.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na carga diária agendada")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":          report.RunID,
		"files_processed": report.FilesProcessed,
		"files_failed":    report.FilesFailed,
		"records_loaded":  report.RecordsLoaded,
		"records_skipped": report.RecordsSkipped,
		"duration":        report.CompletedAt.Sub(report.StartedAt).String(),
	}).Info("Carga diária agendada concluída")

	s.lastSyncCompletedAt = time.Now()
}

// IsRunning indica se há uma carga em andamento
func (s *DailyLoadSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}
