package transforming

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
)

// Pesos do health score: giro de estoque pesa mais que margem
const (
	healthTurnoverWeight = 0.6
	healthMarginWeight   = 0.4

	// Acima de 3x o ponto de reposição o giro é considerado alto
	highTurnoverMultiple = 3
)

// transformInventoryRow valida uma linha bruta de estoque e deriva os campos
// calculados do warehouse
func transformInventoryRow(row domain.RawRow) (*domain.InventoryItem, error) {
	reader := rowReader{row: row}

	itemID, err := reader.requireString("item_id")
	if err != nil {
		return nil, err
	}

	quantity, err := reader.intField("quantity")
	if err != nil {
		return nil, err
	}

	reorderPoint, err := reader.intField("reorder_point")
	if err != nil {
		return nil, err
	}

	unitCost, err := reader.decimalField("unit_cost")
	if err != nil {
		return nil, err
	}

	unitPrice, err := reader.decimalField("unit_price")
	if err != nil {
		return nil, err
	}

	lastUpdated, err := reader.dateField("last_updated")
	if err != nil {
		return nil, err
	}

	leadTimeDays, err := reader.optionalIntField("lead_time_days")
	if err != nil {
		return nil, err
	}

	item := &domain.InventoryItem{
		ItemID:       itemID,
		SKU:          reader.stringField("sku"),
		Product:      reader.stringField("product"),
		Category:     reader.stringField("category"),
		Quantity:     quantity,
		Status:       reader.stringField("status"),
		Location:     reader.stringField("location"),
		ReorderPoint: reorderPoint,
		UnitCost:     unitCost,
		UnitPrice:    unitPrice,
		LastUpdated:  lastUpdated,
		Supplier:     reader.stringField("supplier"),
	}
	if leadTimeDays != nil {
		item.LeadTimeDays = *leadTimeDays
	}

	quantityDec := decimal.NewFromInt(int64(quantity))
	item.InventoryValue = unitCost.Mul(quantityDec).Round(2)
	item.PotentialRevenue = unitPrice.Mul(quantityDec).Round(2)
	item.Margin = unitPrice.Sub(unitCost).Round(2)

	if unitPrice.IsZero() {
		item.MarginPercent = decimal.Zero
	} else {
		item.MarginPercent = item.Margin.Div(unitPrice).Mul(oneHundred).Round(2)
	}

	item.NeedsReorder = quantity <= reorderPoint
	item.TurnoverCategory = turnoverCategory(quantity, reorderPoint)
	item.HealthScore = healthScore(quantity, reorderPoint, item.MarginPercent)

	return item, nil
}

func turnoverCategory(quantity, reorderPoint int) string {
	switch {
	case quantity > reorderPoint*highTurnoverMultiple:
		return domain.TurnoverHigh
	case quantity > reorderPoint:
		return domain.TurnoverMedium
	}
	return domain.TurnoverLow
}

// healthScore combina giro de estoque e margem em uma nota 0-100
func healthScore(quantity, reorderPoint int, marginPercent decimal.Decimal) int {
	turnover := turnoverComponent(quantity, reorderPoint)

	margin, _ := marginPercent.Float64()
	margin = math.Max(0, math.Min(100, margin))

	score := healthTurnoverWeight*turnover + healthMarginWeight*margin
	return int(math.Round(score))
}

// turnoverComponent escala quantidade/ponto de reposição para 0-100,
// saturando no múltiplo de giro alto
func turnoverComponent(quantity, reorderPoint int) float64 {
	if quantity <= 0 {
		return 0
	}
	if reorderPoint <= 0 {
		return 100
	}

	ratio := float64(quantity) / float64(reorderPoint)
	if ratio > highTurnoverMultiple {
		ratio = highTurnoverMultiple
	}

	return ratio / highTurnoverMultiple * 100
}
