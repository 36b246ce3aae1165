package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tamanhos de negócio derivados do valor da oportunidade
const (
	DealSizeSmall      = "Small"
	DealSizeMedium     = "Medium"
	DealSizeLarge      = "Large"
	DealSizeEnterprise = "Enterprise"
)

// Opportunity representa uma linha da tabela opportunities do warehouse,
// com os campos derivados já calculados
type Opportunity struct {
	OpportunityID string          `json:"opportunity_id"`
	Name          string          `json:"name"`
	Customer      string          `json:"customer"`
	Product       string          `json:"product"`
	Amount        decimal.Decimal `json:"amount"`
	Probability   int             `json:"probability"`
	Stage         string          `json:"stage"`
	Region        string          `json:"region"`
	SalesRep      string          `json:"sales_rep"`
	CreatedDate   time.Time       `json:"created_date"`
	CloseDate     time.Time       `json:"close_date"`
	ActualRevenue decimal.Decimal `json:"actual_revenue"`
	Notes         string          `json:"notes"`

	// Campos derivados na transformação
	WeightedAmount decimal.Decimal `json:"weighted_amount"`
	DaysToClose    int             `json:"days_to_close"`
	DealSize       string          `json:"deal_size"`
	HighValue      bool            `json:"high_value"`
	CreatedMonth   string          `json:"created_month"`
	CreatedYear    int             `json:"created_year"`

	LoadedAt time.Time `json:"loaded_at"`
}
