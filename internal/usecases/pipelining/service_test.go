package pipelining

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/powerapps-data-pipeline/internal/config"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
	"github.com/vfg2006/powerapps-data-pipeline/internal/usecases/extracting"
	"github.com/vfg2006/powerapps-data-pipeline/internal/usecases/transforming"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

// stubLoader registra as cargas recebidas sem tocar no banco
type stubLoader struct {
	batches     []*domain.TransformedBatch
	summaryRows int64
}

func (s *stubLoader) Load(ctx context.Context, runID string, batch *domain.TransformedBatch) (*domain.LoadHistoryEntry, error) {
	s.batches = append(s.batches, batch)
	return &domain.LoadHistoryEntry{
		RunID:          runID,
		SourceFile:     batch.SourceFile,
		Entity:         batch.Entity,
		RecordsLoaded:  batch.RecordCount(),
		RecordsSkipped: len(batch.Skipped),
	}, nil
}

func (s *stubLoader) RefreshSalesSummary(ctx context.Context) (int64, error) {
	return s.summaryRows, nil
}

func (s *stubLoader) SalesSummaries() ([]*domain.SalesSummary, error) {
	return []*domain.SalesSummary{
		{ReportDate: "2025-01", Region: "EMEA", TotalOpportunities: 1},
	}, nil
}

func (s *stubLoader) LoadSummary() ([]*domain.LoadBatchSummary, error) {
	return nil, nil
}

func TestService_Run(t *testing.T) {
	inputDir := t.TempDir()
	processedDir := t.TempDir()

	// Export JSON com uma oportunidade válida
	exportJSON := `{
		"export_date": "2025-08-01",
		"data": {
			"opportunities": [
				{
					"opportunity_id": "OPP001",
					"amount": 1000,
					"probability": 50,
					"created_date": "2025-01-01",
					"close_date": "2025-01-31"
				}
			]
		}
	}`
	assert.NoError(t, os.WriteFile(
		filepath.Join(inputDir, "powerapps_export_2025-08-01.json"),
		[]byte(exportJSON), 0o644,
	))

	// CSV com uma linha válida e uma malformada
	exportCSV := "Opportunity ID,Amount,Probability,Created Date,Close Date\n" +
		"OPP002,2500,80,2025-02-01,2025-03-01\n" +
		"OPP003,abc,80,2025-02-01,2025-03-01\n"
	assert.NoError(t, os.WriteFile(
		filepath.Join(inputDir, "opportunities_2025-08-02.csv"),
		[]byte(exportCSV), 0o644,
	))

	// CSV corrompido de entidade conhecida: vira arquivo com falha
	assert.NoError(t, os.WriteFile(
		filepath.Join(inputDir, "inventory_2025-08-03.csv"),
		[]byte(""), 0o644,
	))

	// Entidade não reconhecida: apenas aviso, não conta como falha
	assert.NoError(t, os.WriteFile(
		filepath.Join(inputDir, "clientes_2025-08-01.csv"),
		[]byte("ID\nC1\n"), 0o644,
	))

	loader := &stubLoader{summaryRows: 3}
	cfg := &config.Config{
		Pipeline: config.Pipeline{
			InputDir:     inputDir,
			ProcessedDir: processedDir,
		},
	}

	service := NewService(extracting.NewService(), transforming.NewService(), loader, cfg)

	report, err := service.Run(context.Background())

	assert.NoError(t, err)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2, report.FilesProcessed)
	assert.Equal(t, 1, report.FilesFailed)
	assert.Equal(t, 2, report.RecordsLoaded)
	// A linha malformada do CSV; o arquivo corrompido é auditado via
	// load_history e contado em files_failed
	assert.Equal(t, 1, report.RecordsSkipped)
	assert.Equal(t, int64(3), report.SummaryRows)
	assert.False(t, report.CompletedAt.Before(report.StartedAt))

	// O arquivo corrompido gera um lote sem registros, só com o motivo da falha
	var failedBatch *domain.TransformedBatch
	for _, batch := range loader.batches {
		if batch.SourceFile == "inventory_2025-08-03.csv" {
			failedBatch = batch
		}
	}
	assert.NotNil(t, failedBatch)
	assert.Equal(t, domain.EntityInventory, failedBatch.Entity)
	assert.Equal(t, 0, failedBatch.RecordCount())
	assert.Len(t, failedBatch.Skipped, 1)

	// Relatório de qualidade gravado no diretório de processados
	reportPath := filepath.Join(processedDir, fmt.Sprintf("quality_report_%s.json", time.Now().Format("20060102")))
	_, statErr := os.Stat(reportPath)
	assert.NoError(t, statErr)
}

func TestService_Run_DiretorioDeEntradaInexistente(t *testing.T) {
	loader := &stubLoader{}
	cfg := &config.Config{
		Pipeline: config.Pipeline{
			InputDir:     "/caminho/inexistente",
			ProcessedDir: t.TempDir(),
		},
	}

	service := NewService(extracting.NewService(), transforming.NewService(), loader, cfg)

	_, err := service.Run(context.Background())

	assert.Error(t, err)
	assert.Empty(t, loader.batches)
}
