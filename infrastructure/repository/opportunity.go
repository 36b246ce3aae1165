package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/powerapps-data-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
)

const (
	opportunitiesTable = "opportunities"
)

type OpportunityRepository interface {
	SaveOrUpdate(opportunity *domain.Opportunity) error
}

type opportunityRepository struct {
	conn *postgres.Connection
}

func NewOpportunityRepository(conn *postgres.Connection) OpportunityRepository {
	return &opportunityRepository{
		conn: conn,
	}
}

// SaveOrUpdate insere ou atualiza uma oportunidade pela chave primária (upsert idempotente)
func (r *opportunityRepository) SaveOrUpdate(opportunity *domain.Opportunity) error {
	query := squirrel.StatementBuilder.
		Insert(opportunitiesTable).
		Columns(
			"opportunity_id", "name", "customer", "product", "amount", "probability",
			"stage", "region", "sales_rep", "created_date", "close_date", "actual_revenue",
			"notes", "weighted_amount", "days_to_close", "deal_size", "high_value",
			"created_month", "created_year",
		).
		Values(
			opportunity.OpportunityID,
			opportunity.Name,
			opportunity.Customer,
			opportunity.Product,
			opportunity.Amount,
			opportunity.Probability,
			opportunity.Stage,
			opportunity.Region,
			opportunity.SalesRep,
			opportunity.CreatedDate,
			opportunity.CloseDate,
			opportunity.ActualRevenue,
			opportunity.Notes,
			opportunity.WeightedAmount,
			opportunity.DaysToClose,
			opportunity.DealSize,
			opportunity.HighValue,
			opportunity.CreatedMonth,
			opportunity.CreatedYear,
		).
		Suffix(`
			ON CONFLICT (opportunity_id) DO UPDATE SET
				name = EXCLUDED.name,
				customer = EXCLUDED.customer,
				product = EXCLUDED.product,
				amount = EXCLUDED.amount,
				probability = EXCLUDED.probability,
				stage = EXCLUDED.stage,
				region = EXCLUDED.region,
				sales_rep = EXCLUDED.sales_rep,
				created_date = EXCLUDED.created_date,
				close_date = EXCLUDED.close_date,
				actual_revenue = EXCLUDED.actual_revenue,
				notes = EXCLUDED.notes,
				weighted_amount = EXCLUDED.weighted_amount,
				days_to_close = EXCLUDED.days_to_close,
				deal_size = EXCLUDED.deal_size,
				high_value = EXCLUDED.high_value,
				created_month = EXCLUDED.created_month,
				created_year = EXCLUDED.created_year,
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
