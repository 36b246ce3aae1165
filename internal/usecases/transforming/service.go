package transforming

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
)

// Transformer valida e deriva os campos de um lote bruto
type Transformer interface {
	Transform(batch *domain.ExportBatch) (*domain.TransformedBatch, *QualityReport)
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Transform aplica a derivação de campos linha a linha. Linhas malformadas são
// descartadas com o motivo registrado; nunca interrompem o lote
func (s *Service) Transform(batch *domain.ExportBatch) (*domain.TransformedBatch, *QualityReport) {
	transformed := &domain.TransformedBatch{
		Entity:     batch.Entity,
		SourceFile: batch.SourceFile,
		ExportDate: batch.ExportDate,
	}

	for i, row := range batch.Rows {
		if err := s.transformRow(transformed, row); err != nil {
			skipped := domain.SkippedRow{
				RowIndex: i,
				RecordID: recordID(batch.Entity, row),
				Reason:   err.Error(),
			}
			transformed.Skipped = append(transformed.Skipped, skipped)

			logrus.WithFields(logrus.Fields{
				"source_file": batch.SourceFile,
				"entity":      batch.Entity,
				"row_index":   i,
				"record_id":   skipped.RecordID,
			}).Warnf("Linha descartada na transformação: %v", err)
		}
	}

	report := buildQualityReport(batch, transformed)

	logrus.WithFields(logrus.Fields{
		"source_file":   batch.SourceFile,
		"entity":        batch.Entity,
		"rows_in":       len(batch.Rows),
		"rows_out":      transformed.RecordCount(),
		"rows_skipped":  len(transformed.Skipped),
		"quality_score": report.DataQualityScore,
	}).Info("Transformação concluída")

	return transformed, report
}

func (s *Service) transformRow(transformed *domain.TransformedBatch, row domain.RawRow) error {
	switch transformed.Entity {
	case domain.EntityOpportunities:
		opportunity, err := transformOpportunityRow(row)
		if err != nil {
			return err
		}
		transformed.Opportunities = append(transformed.Opportunities, opportunity)

	case domain.EntityFeedback:
		feedback, err := transformFeedbackRow(row)
		if err != nil {
			return err
		}
		transformed.Feedback = append(transformed.Feedback, feedback)

	case domain.EntityInventory:
		item, err := transformInventoryRow(row)
		if err != nil {
			return err
		}
		transformed.Inventory = append(transformed.Inventory, item)

	default:
		return fmt.Errorf("entidade não suportada: %s", transformed.Entity)
	}

	return nil
}

// primaryKeyField retorna a coluna de chave primária da entidade
func primaryKeyField(entity domain.Entity) string {
	switch entity {
	case domain.EntityOpportunities:
		return "opportunity_id"
	case domain.EntityFeedback:
		return "feedback_id"
	case domain.EntityInventory:
		return "item_id"
	}
	return ""
}

func recordID(entity domain.Entity, row domain.RawRow) string {
	return row[primaryKeyField(entity)]
}
