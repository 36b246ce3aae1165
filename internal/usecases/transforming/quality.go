package transforming

import (
	"time"

	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/utils"
)

// Penalidades do score de qualidade (base 100)
const (
	missingDataPenalty = 50
	duplicatePenalty   = 30
)

// QualityReport resume a qualidade de um lote transformado
type QualityReport struct {
	Entity              domain.Entity      `json:"entity"`
	SourceFile          string             `json:"source_file"`
	ExportDate          string             `json:"export_date"`
	Timestamp           time.Time          `json:"timestamp"`
	OriginalRowCount    int                `json:"original_row_count"`
	TransformedRowCount int                `json:"transformed_row_count"`
	NullCounts          map[string]int     `json:"null_counts"`
	DuplicateKeys       int                `json:"duplicate_keys"`
	SkippedRows         []domain.SkippedRow `json:"skipped_rows"`
	DataQualityScore    float64            `json:"data_quality_score"`
}

// buildQualityReport calcula o score 0-100 do lote: penaliza células vazias e
// chaves primárias duplicadas na origem
func buildQualityReport(batch *domain.ExportBatch, transformed *domain.TransformedBatch) *QualityReport {
	report := &QualityReport{
		Entity:              batch.Entity,
		SourceFile:          batch.SourceFile,
		ExportDate:          batch.ExportDate,
		Timestamp:           time.Now(),
		OriginalRowCount:    len(batch.Rows),
		TransformedRowCount: transformed.RecordCount(),
		NullCounts:          map[string]int{},
		SkippedRows:         transformed.Skipped,
		DataQualityScore:    100,
	}

	if len(batch.Rows) == 0 {
		return report
	}

	totalCells := 0
	emptyCells := 0
	for _, row := range batch.Rows {
		for field, value := range row {
			totalCells++
			if value == "" {
				emptyCells++
				report.NullCounts[field]++
			}
		}
	}

	pkField := primaryKeyField(batch.Entity)
	seen := make(map[string]bool, len(batch.Rows))
	for _, row := range batch.Rows {
		key := row[pkField]
		if key == "" {
			continue
		}
		if seen[key] {
			report.DuplicateKeys++
		}
		seen[key] = true
	}

	score := float64(100)
	if totalCells > 0 {
		score -= float64(emptyCells) / float64(totalCells) * missingDataPenalty
	}
	score -= float64(report.DuplicateKeys) / float64(len(batch.Rows)) * duplicatePenalty

	if score < 0 {
		score = 0
	}
	report.DataQualityScore = utils.RoundWithTwoDecimalPlace(score)

	return report
}
