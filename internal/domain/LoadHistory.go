package domain

import (
	"time"
)

// LoadStatus é o resultado registrado de uma tentativa de carga
type LoadStatus string

const (
	LoadStatusSuccess LoadStatus = "success"
	LoadStatusPartial LoadStatus = "partial"
	LoadStatusFailed  LoadStatus = "failed"
)

// LoadBatchSummary agrega o histórico de cargas por dia/entidade
type LoadBatchSummary struct {
	LoadDate     string `json:"load_date"`
	Entity       Entity `json:"entity"`
	Batches      int    `json:"batches"`
	TotalRecords int    `json:"total_records"`
	TotalSkipped int    `json:"total_skipped"`
}

// LoadHistoryEntry representa uma linha append-only da tabela load_history,
// auditando o resultado da carga de um arquivo/entidade
type LoadHistoryEntry struct {
	ID             int64      `json:"id"`
	RunID          string     `json:"run_id"`
	LoadTimestamp  time.Time  `json:"load_timestamp"`
	SourceFile     string     `json:"source_file"`
	Entity         Entity     `json:"entity"`
	RecordsLoaded  int        `json:"records_loaded"`
	RecordsSkipped int        `json:"records_skipped"`
	Status         LoadStatus `json:"status"`
}
