package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary representa uma linha agregada da tabela sales_summary,
// gerada por mês/região a partir das oportunidades carregadas
type SalesSummary struct {
	ID                 int64           `json:"id"`
	ReportDate         string          `json:"report_date"` // formato YYYY-MM
	Region             string          `json:"region"`
	TotalOpportunities int             `json:"total_opportunities"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	WeightedAmount     decimal.Decimal `json:"weighted_amount"`
	WonAmount          decimal.Decimal `json:"won_amount"`
	LostAmount         decimal.Decimal `json:"lost_amount"`
	WinRate            float64         `json:"win_rate"`
	AvgDealSize        decimal.Decimal `json:"avg_deal_size"`
	GeneratedAt        time.Time       `json:"generated_at"`
}
