package pipelining

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/powerapps-data-pipeline/internal/config"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
	"github.com/vfg2006/powerapps-data-pipeline/internal/usecases/extracting"
	"github.com/vfg2006/powerapps-data-pipeline/internal/usecases/loading"
	"github.com/vfg2006/powerapps-data-pipeline/internal/usecases/transforming"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/etlerrors"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/log"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Status de passo do pipeline, registrados no log de execução
const (
	stepStarted   = "STARTED"
	stepCompleted = "COMPLETED"
	stepFailed    = "FAILED"
)

// Runner executa uma passada completa do pipeline: extract -> transform -> load
type Runner interface {
	Run(ctx context.Context) (*RunReport, error)
}

// RunReport resume uma execução do pipeline
type RunReport struct {
	RunID          string                        `json:"run_id"`
	StartedAt      time.Time                     `json:"started_at"`
	CompletedAt    time.Time                     `json:"completed_at"`
	FilesProcessed int                           `json:"files_processed"`
	FilesFailed    int                           `json:"files_failed"`
	RecordsLoaded  int                           `json:"records_loaded"`
	RecordsSkipped int                           `json:"records_skipped"`
	SummaryRows    int64                         `json:"summary_rows"`
	QualityReports []*transforming.QualityReport `json:"quality_reports"`
}

type Service struct {
	extractor   extracting.Extractor
	transformer transforming.Transformer
	loader      loading.Loader
	cfg         *config.Config
}

func NewService(
	extractor extracting.Extractor,
	transformer transforming.Transformer,
	loader loading.Loader,
	cfg *config.Config,
) Runner {
	return &Service{
		extractor:   extractor,
		transformer: transformer,
		loader:      loader,
		cfg:         cfg,
	}
}

// Run processa todos os arquivos do diretório de entrada em sequência. Falha
// de um arquivo é registrada e o run segue para o próximo; falhas de
// infraestrutura (diretório ilegível, banco indisponível) encerram o run
func (s *Service) Run(ctx context.Context) (*RunReport, error) {
	runID, err := utils.NewID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o ID do run: %w", err)
	}

	ctx = log.WithRunID(ctx, runID)
	logger := log.ForContext(ctx)

	report := &RunReport{
		RunID:     runID,
		StartedAt: time.Now(),
	}

	s.logStep(logger, "Pipeline", stepStarted, s.cfg.Pipeline.InputDir)

	files, err := s.extractor.ListSourceFiles(s.cfg.Pipeline.InputDir)
	if err != nil {
		s.logStep(logger, "Pipeline", stepFailed, err.Error())
		return nil, err
	}

	for _, path := range files {
		s.processFile(ctx, logger, report, path)
	}

	summaryRows, err := s.loader.RefreshSalesSummary(ctx)
	if err != nil {
		s.logStep(logger, "Sales Summary", stepFailed, err.Error())
		return nil, err
	}
	report.SummaryRows = summaryRows
	s.logStep(logger, "Sales Summary", stepCompleted, fmt.Sprintf("%d linhas agregadas", summaryRows))
	s.logSalesSummary(logger)

	if err := s.writeQualityReport(report); err != nil {
		// Relatório de qualidade é informativo, não derruba o run
		logger.WithError(err).Warn("Erro ao gravar o relatório de qualidade")
	}

	s.logLoadSummary(logger)

	report.CompletedAt = time.Now()
	s.logStep(logger, "Pipeline", stepCompleted, fmt.Sprintf(
		"%d arquivos processados, %d com falha, %d registros carregados, %d descartados em %v",
		report.FilesProcessed,
		report.FilesFailed,
		report.RecordsLoaded,
		report.RecordsSkipped,
		report.CompletedAt.Sub(report.StartedAt).Round(time.Millisecond),
	))

	return report, nil
}

// processFile roda extract -> transform -> load para um arquivo de origem
func (s *Service) processFile(ctx context.Context, logger log.Logger, report *RunReport, path string) {
	fileName := filepath.Base(path)
	s.logStep(logger, "Extract", stepStarted, fileName)

	batches, err := s.extractor.Extract(path)
	if err != nil {
		s.logStep(logger, "Extract", stepFailed, fmt.Sprintf("%s: %v", fileName, err))
		s.recordFileFailure(ctx, report, path, err)
		return
	}

	if len(batches) == 0 {
		logger.WithField("source_file", fileName).Warn("Arquivo sem lotes reconhecidos, ignorando")
		return
	}

	fileFailed := false
	for _, batch := range batches {
		transformed, qualityReport := s.transformer.Transform(batch)
		report.QualityReports = append(report.QualityReports, qualityReport)

		logger.WithFields(log.Fields{
			"source_file": fileName,
			"entity":      batch.Entity,
		}).Debugf("Relatório de qualidade do lote: %s", utils.PrettyJson(qualityReport))

		entry, err := s.loader.Load(ctx, report.RunID, transformed)
		if err != nil {
			s.logStep(logger, "Load", stepFailed, fmt.Sprintf("%s (%s): %v", fileName, batch.Entity, err))
			fileFailed = true
			continue
		}

		report.RecordsLoaded += entry.RecordsLoaded
		report.RecordsSkipped += entry.RecordsSkipped
	}

	if fileFailed {
		report.FilesFailed++
		return
	}

	report.FilesProcessed++
	s.logStep(logger, "Extract", stepCompleted, fileName)
}

// recordFileFailure contabiliza uma falha de arquivo. Entidade não
// reconhecida apenas gera aviso (comportamento herdado dos exports antigos);
// arquivo corrompido de entidade conhecida vira linha failed no load_history
func (s *Service) recordFileFailure(ctx context.Context, report *RunReport, path string, extractErr error) {
	pipeErr, ok := extractErr.(*etlerrors.PipelineError)
	if ok && pipeErr.Code == etlerrors.ErrUnknownEntity {
		return
	}

	report.FilesFailed++

	entity, _, err := extracting.EntityFromFilename(path)
	if err != nil {
		// Sem entidade identificável não há o que auditar no histórico
		return
	}

	_, err = s.loader.Load(ctx, report.RunID, &domain.TransformedBatch{
		Entity:     entity,
		SourceFile: filepath.Base(path),
		Skipped: []domain.SkippedRow{{
			Reason: extractErr.Error(),
		}},
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao registrar falha de arquivo no histórico")
	}
}

// writeQualityReport grava o relatório de qualidade do run no diretório de processados
func (s *Service) writeQualityReport(report *RunReport) error {
	if len(report.QualityReports) == 0 {
		return nil
	}

	if err := os.MkdirAll(s.cfg.Pipeline.ProcessedDir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar o diretório de processados: %w", err)
	}

	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar o relatório de qualidade: %w", err)
	}

	fileName := fmt.Sprintf("quality_report_%s.json", time.Now().Format("20060102"))
	path := filepath.Join(s.cfg.Pipeline.ProcessedDir, fileName)

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar o relatório de qualidade: %w", err)
	}

	logrus.WithField("path", path).Info("Relatório de qualidade gravado")
	return nil
}

// logSalesSummary loga os agregados de vendas regenerados no run
func (s *Service) logSalesSummary(logger log.Logger) {
	summaries, err := s.loader.SalesSummaries()
	if err != nil {
		logger.WithError(err).Warn("Erro ao consultar os agregados de vendas")
		return
	}

	for _, summary := range summaries {
		logger.WithFields(log.Fields{
			"report_date":         summary.ReportDate,
			"region":              summary.Region,
			"total_opportunities": summary.TotalOpportunities,
			"total_amount":        summary.TotalAmount,
			"win_rate":            summary.WinRate,
		}).Debug("Resumo de vendas")
	}
}

// logLoadSummary loga o histórico agregado de cargas após o run
func (s *Service) logLoadSummary(logger log.Logger) {
	summaries, err := s.loader.LoadSummary()
	if err != nil {
		logger.WithError(err).Warn("Erro ao consultar o resumo de cargas")
		return
	}

	for _, summary := range summaries {
		logger.WithFields(log.Fields{
			"load_date":     summary.LoadDate,
			"entity":        summary.Entity,
			"batches":       summary.Batches,
			"total_records": summary.TotalRecords,
			"total_skipped": summary.TotalSkipped,
		}).Debug("Resumo de cargas")
	}
}

func (s *Service) logStep(logger log.Logger, step, status, details string) {
	logger.WithFields(log.Fields{
		"step":   step,
		"status": status,
	}).Info(details)
}
