package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/powerapps-data-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
)

const (
	salesSummaryTable = "sales_summary"
)

type SalesSummaryRepository interface {
	RefreshFromOpportunities(ctx context.Context) (int64, error)
	List() ([]*domain.SalesSummary, error)
}

type salesSummaryRepository struct {
	conn *postgres.Connection
}

func NewSalesSummaryRepository(conn *postgres.Connection) SalesSummaryRepository {
	return &salesSummaryRepository{
		conn: conn,
	}
}

// Agregação por mês/região das oportunidades carregadas. win_rate considera
// apenas oportunidades fechadas (Closed Won / Closed Lost)
const refreshSalesSummaryQuery = `
	INSERT INTO sales_summary (
		report_date, region, total_opportunities, total_amount,
		weighted_amount, won_amount, lost_amount, win_rate, avg_deal_size
	)
	SELECT
		created_month AS report_date,
		region,
		COUNT(*) AS total_opportunities,
		COALESCE(SUM(amount), 0) AS total_amount,
		COALESCE(SUM(weighted_amount), 0) AS weighted_amount,
		COALESCE(SUM(CASE WHEN stage = 'Closed Won' THEN actual_revenue ELSE 0 END), 0) AS won_amount,
		COALESCE(SUM(CASE WHEN stage = 'Closed Lost' THEN amount ELSE 0 END), 0) AS lost_amount,
		COALESCE(
			AVG(CASE WHEN stage = 'Closed Won' THEN 1.0
				WHEN stage = 'Closed Lost' THEN 0.0
				ELSE NULL END),
			0
		) AS win_rate,
		COALESCE(AVG(amount), 0) AS avg_deal_size
	FROM opportunities
	GROUP BY created_month, region
`

// RefreshFromOpportunities regenera a tabela sales_summary a partir das
// oportunidades, em uma única transação (truncate + insert/select)
func (r *salesSummaryRepository) RefreshFromOpportunities(ctx context.Context) (int64, error) {
	var generated int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", salesSummaryTable)); err != nil {
			return fmt.Errorf("erro ao limpar sales_summary: %w", err)
		}

		result, err := tx.ExecContext(ctx, refreshSalesSummaryQuery)
		if err != nil {
			return fmt.Errorf("erro ao regenerar sales_summary: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}

		generated = rowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return generated, nil
}

// List retorna os agregados de vendas ordenados por mês/região
func (r *salesSummaryRepository) List() ([]*domain.SalesSummary, error) {
	query, args, err := squirrel.
		Select(
			"id", "report_date", "region", "total_opportunities", "total_amount",
			"weighted_amount", "won_amount", "lost_amount", "win_rate",
			"avg_deal_size", "generated_at",
		).
		From(salesSummaryTable).
		OrderBy("report_date DESC", "region ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.SalesSummary, 0)
	for rows.Next() {
		summary := &domain.SalesSummary{}
		err := rows.Scan(
			&summary.ID,
			&summary.ReportDate,
			&summary.Region,
			&summary.TotalOpportunities,
			&summary.TotalAmount,
			&summary.WeightedAmount,
			&summary.WonAmount,
			&summary.LostAmount,
			&summary.WinRate,
			&summary.AvgDealSize,
			&summary.GeneratedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de vendas: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}
