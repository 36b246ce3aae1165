package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/powerapps-data-pipeline/internal/config"
	"github.com/vfg2006/powerapps-data-pipeline/internal/usecases/pipelining"
)

// stubRunner substitui o pipeline real nos testes do agendador
type stubRunner struct {
	runs   int
	report *pipelining.RunReport
	err    error
}

func (s *stubRunner) Run(ctx context.Context) (*pipelining.RunReport, error) {
	s.runs++
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		DailyLoadSync: config.DailyLoadSync{
			CronSchedule: "0 2 * * *",
			Enabled:      enabled,
		},
	}
}

func TestDailyLoadSyncService_Start(t *testing.T) {
	t.Run("Agendador desabilitado não agenda nada", func(t *testing.T) {
		runner := &stubRunner{}
		service := NewDailyLoadSyncService(runner, newTestConfig(false))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		err := service.Start(ctx)

		assert.NoError(t, err)
		assert.False(t, service.IsRunning())
		assert.Equal(t, 0, runner.runs)
	})

	t.Run("Agendador habilitado registra o job sem erro", func(t *testing.T) {
		runner := &stubRunner{report: &pipelining.RunReport{RunID: "run123"}}
		service := NewDailyLoadSyncService(runner, newTestConfig(true))

		ctx, cancel := context.WithCancel(context.Background())

		err := service.Start(ctx)
		assert.NoError(t, err)

		// Cancelar o contexto deve parar o agendador sem pânico
		cancel()
		time.Sleep(50 * time.Millisecond)
	})

	t.Run("Expressão cron inválida retorna erro", func(t *testing.T) {
		runner := &stubRunner{}
		cfg := newTestConfig(true)
		cfg.DailyLoadSync.CronSchedule = "cron inválido"
		service := NewDailyLoadSyncService(runner, cfg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		err := service.Start(ctx)

		assert.Error(t, err)
	})
}

func TestDailyLoadSyncService_runDailyLoad(t *testing.T) {
	t.Run("Deve executar o pipeline e liberar o lock ao final", func(t *testing.T) {
		runner := &stubRunner{
			report: &pipelining.RunReport{
				RunID:          "run123",
				FilesProcessed: 2,
				RecordsLoaded:  40,
			},
		}
		service := NewDailyLoadSyncService(runner, newTestConfig(true))

		service.runDailyLoad(context.Background())

		assert.Equal(t, 1, runner.runs)
		assert.False(t, service.IsRunning())
	})

	t.Run("Disparo sobreposto é ignorado", func(t *testing.T) {
		runner := &stubRunner{report: &pipelining.RunReport{RunID: "run123"}}
		service := NewDailyLoadSyncService(runner, newTestConfig(true))

		service.syncMutex.Lock()
		service.syncRunning = true
		service.syncMutex.Unlock()

		service.runDailyLoad(context.Background())

		assert.Equal(t, 0, runner.runs)
	})

	t.Run("Erro do pipeline não derruba o agendador", func(t *testing.T) {
		runner := &stubRunner{err: assert.AnError}
		service := NewDailyLoadSyncService(runner, newTestConfig(true))

		service.runDailyLoad(context.Background())

		assert.Equal(t, 1, runner.runs)
		assert.False(t, service.IsRunning())
	})
}
