package domain

// Entity identifica o tipo de registro exportado do PowerApps
type Entity string

const (
	EntityOpportunities Entity = "opportunities"
	EntityFeedback      Entity = "feedback"
	EntityInventory     Entity = "inventory"
)

// KnownEntities lista as entidades reconhecidas pelo pipeline
var KnownEntities = []Entity{EntityOpportunities, EntityFeedback, EntityInventory}

func IsKnownEntity(e Entity) bool {
	for _, known := range KnownEntities {
		if e == known {
			return true
		}
	}
	return false
}

// RawRow representa uma linha bruta de origem: cabeçalho normalizado -> valor da célula como string.
// CSV e Excel chegam naturalmente neste formato; exports JSON são achatados para ele.
type RawRow map[string]string

// ExportBatch agrupa as linhas brutas de uma entidade em um arquivo de origem
type ExportBatch struct {
	Entity     Entity
	SourceFile string
	ExportDate string
	Rows       []RawRow
}

// SkippedRow registra uma linha descartada na transformação com o motivo
type SkippedRow struct {
	RowIndex int    `json:"row_index"`
	RecordID string `json:"record_id"`
	Reason   string `json:"reason"`
}

// TransformedBatch carrega os registros derivados prontos para carga
type TransformedBatch struct {
	Entity     Entity
	SourceFile string
	ExportDate string

	Opportunities []*Opportunity
	Feedback      []*CustomerFeedback
	Inventory     []*InventoryItem

	Skipped []SkippedRow
}

// RecordCount retorna o total de registros derivados no lote
func (b *TransformedBatch) RecordCount() int {
	switch b.Entity {
	case EntityOpportunities:
		return len(b.Opportunities)
	case EntityFeedback:
		return len(b.Feedback)
	case EntityInventory:
		return len(b.Inventory)
	}
	return 0
}
