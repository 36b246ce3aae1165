package loading

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/powerapps-data-pipeline/infrastructure/repository"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
)

type Service struct {
	opportunityRepo  repository.OpportunityRepository
	feedbackRepo     repository.CustomerFeedbackRepository
	inventoryRepo    repository.InventoryRepository
	loadHistoryRepo  repository.LoadHistoryRepository
	salesSummaryRepo repository.SalesSummaryRepository
}

func NewService(
	opportunityRepo repository.OpportunityRepository,
	feedbackRepo repository.CustomerFeedbackRepository,
	inventoryRepo repository.InventoryRepository,
	loadHistoryRepo repository.LoadHistoryRepository,
	salesSummaryRepo repository.SalesSummaryRepository,
) Loader {
	return &Service{
		opportunityRepo:  opportunityRepo,
		feedbackRepo:     feedbackRepo,
		inventoryRepo:    inventoryRepo,
		loadHistoryRepo:  loadHistoryRepo,
		salesSummaryRepo: salesSummaryRepo,
	}
}

// Load faz o upsert de cada registro derivado pela chave primária e registra
// uma linha de load_history com os contadores do lote. Reexecutar o mesmo
// arquivo não duplica registros no warehouse
func (s *Service) Load(ctx context.Context, runID string, batch *domain.TransformedBatch) (*domain.LoadHistoryEntry, error) {
	loaded := 0
	failed := 0

	upsert := func(recordID string, fn func() error) {
		if err := fn(); err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"run_id":      runID,
				"source_file": batch.SourceFile,
				"entity":      batch.Entity,
				"record_id":   recordID,
			}).WithError(err).Error("Erro ao carregar registro")
			return
		}
		loaded++
	}

	switch batch.Entity {
	case domain.EntityOpportunities:
		for _, opportunity := range batch.Opportunities {
			opportunity := opportunity
			upsert(opportunity.OpportunityID, func() error {
				return s.opportunityRepo.SaveOrUpdate(opportunity)
			})
		}
	case domain.EntityFeedback:
		for _, feedback := range batch.Feedback {
			feedback := feedback
			upsert(feedback.FeedbackID, func() error {
				return s.feedbackRepo.SaveOrUpdate(feedback)
			})
		}
	case domain.EntityInventory:
		for _, item := range batch.Inventory {
			item := item
			upsert(item.ItemID, func() error {
				return s.inventoryRepo.SaveOrUpdate(item)
			})
		}
	default:
		return nil, fmt.Errorf("entidade não suportada para carga: %s", batch.Entity)
	}

	entry := &domain.LoadHistoryEntry{
		RunID:          runID,
		SourceFile:     batch.SourceFile,
		Entity:         batch.Entity,
		RecordsLoaded:  loaded,
		RecordsSkipped: len(batch.Skipped) + failed,
	}
	entry.Status = loadStatus(loaded, entry.RecordsSkipped)

	if err := s.loadHistoryRepo.Append(entry); err != nil {
		return nil, fmt.Errorf("erro ao registrar load_history: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":          runID,
		"source_file":     batch.SourceFile,
		"entity":          batch.Entity,
		"records_loaded":  entry.RecordsLoaded,
		"records_skipped": entry.RecordsSkipped,
		"status":          entry.Status,
	}).Info("Carga concluída")

	return entry, nil
}

// RefreshSalesSummary regenera os agregados de vendas por mês/região
func (s *Service) RefreshSalesSummary(ctx context.Context) (int64, error) {
	generated, err := s.salesSummaryRepo.RefreshFromOpportunities(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao regenerar sales_summary: %w", err)
	}

	logrus.WithField("rows", generated).Info("Resumo de vendas regenerado")
	return generated, nil
}

// SalesSummaries retorna os agregados de vendas gerados por mês/região
func (s *Service) SalesSummaries() ([]*domain.SalesSummary, error) {
	return s.salesSummaryRepo.List()
}

// LoadSummary retorna o histórico agregado de cargas por dia/entidade
func (s *Service) LoadSummary() ([]*domain.LoadBatchSummary, error) {
	return s.loadHistoryRepo.Summary()
}

// loadStatus resolve o status do lote: success sem skips, partial com skips
// e ao menos um registro carregado, failed sem nenhum registro carregado
func loadStatus(loaded, skipped int) domain.LoadStatus {
	switch {
	case skipped == 0:
		return domain.LoadStatusSuccess
	case loaded > 0:
		return domain.LoadStatusPartial
	}
	return domain.LoadStatusFailed
}
