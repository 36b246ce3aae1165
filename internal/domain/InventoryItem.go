package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorias de giro de estoque derivadas de quantidade x ponto de reposição
const (
	TurnoverHigh   = "High"
	TurnoverMedium = "Medium"
	TurnoverLow    = "Low"
)

// InventoryItem representa uma linha da tabela inventory do warehouse
type InventoryItem struct {
	ItemID       string          `json:"item_id"`
	SKU          string          `json:"sku"`
	Product      string          `json:"product"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	Status       string          `json:"status"`
	Location     string          `json:"location"`
	ReorderPoint int             `json:"reorder_point"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LastUpdated  time.Time       `json:"last_updated"`
	Supplier     string          `json:"supplier"`
	LeadTimeDays int             `json:"lead_time_days"`

	// Campos derivados na transformação
	InventoryValue   decimal.Decimal `json:"inventory_value"`
	PotentialRevenue decimal.Decimal `json:"potential_revenue"`
	Margin           decimal.Decimal `json:"margin"`
	MarginPercent    decimal.Decimal `json:"margin_percent"`
	NeedsReorder     bool            `json:"needs_reorder"`
	HealthScore      int             `json:"health_score"`
	TurnoverCategory string          `json:"turnover_category"`

	LoadedAt time.Time `json:"loaded_at"`
}
