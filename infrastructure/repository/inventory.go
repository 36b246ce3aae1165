package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/powerapps-data-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
)

const (
	inventoryTable = "inventory"
)

type InventoryRepository interface {
	SaveOrUpdate(item *domain.InventoryItem) error
}

type inventoryRepository struct {
	conn *postgres.Connection
}

func NewInventoryRepository(conn *postgres.Connection) InventoryRepository {
	return &inventoryRepository{
		conn: conn,
	}
}

// SaveOrUpdate insere ou atualiza um item de estoque pela chave primária (upsert idempotente)
func (r *inventoryRepository) SaveOrUpdate(item *domain.InventoryItem) error {
	query := squirrel.StatementBuilder.
		Insert(inventoryTable).
		Columns(
			"item_id", "sku", "product", "category", "quantity", "status",
			"location", "reorder_point", "unit_cost", "unit_price",
			"last_updated", "supplier", "lead_time_days", "inventory_value",
			"potential_revenue", "margin", "margin_percent", "needs_reorder",
			"health_score", "turnover_category",
		).
		Values(
			item.ItemID,
			item.SKU,
			item.Product,
			item.Category,
			item.Quantity,
			item.Status,
			item.Location,
			item.ReorderPoint,
			item.UnitCost,
			item.UnitPrice,
			item.LastUpdated,
			item.Supplier,
			item.LeadTimeDays,
			item.InventoryValue,
			item.PotentialRevenue,
			item.Margin,
			item.MarginPercent,
			item.NeedsReorder,
			item.HealthScore,
			item.TurnoverCategory,
		).
		Suffix(`
			ON CONFLICT (item_id) DO UPDATE SET
				sku = EXCLUDED.sku,
				product = EXCLUDED.product,
				category = EXCLUDED.category,
				quantity = EXCLUDED.quantity,
				status = EXCLUDED.status,
				location = EXCLUDED.location,
				reorder_point = EXCLUDED.reorder_point,
				unit_cost = EXCLUDED.unit_cost,
				unit_price = EXCLUDED.unit_price,
				last_updated = EXCLUDED.last_updated,
				supplier = EXCLUDED.supplier,
				lead_time_days = EXCLUDED.lead_time_days,
				inventory_value = EXCLUDED.inventory_value,
				potential_revenue = EXCLUDED.potential_revenue,
				margin = EXCLUDED.margin,
				margin_percent = EXCLUDED.margin_percent,
				needs_reorder = EXCLUDED.needs_reorder,
				health_score = EXCLUDED.health_score,
				turnover_category = EXCLUDED.turnover_category,
				loaded_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
