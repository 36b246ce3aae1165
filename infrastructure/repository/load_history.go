package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/powerapps-data-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
)

const (
	loadHistoryTable = "load_history"
)

type LoadHistoryRepository interface {
	Append(entry *domain.LoadHistoryEntry) error
	Summary() ([]*domain.LoadBatchSummary, error)
}

type loadHistoryRepository struct {
	conn *postgres.Connection
}

func NewLoadHistoryRepository(conn *postgres.Connection) LoadHistoryRepository {
	return &loadHistoryRepository{
		conn: conn,
	}
}

// Append registra o resultado de uma carga. A tabela é append-only:
// reexecuções do mesmo arquivo geram novas linhas de histórico
func (r *loadHistoryRepository) Append(entry *domain.LoadHistoryEntry) error {
	query := squirrel.StatementBuilder.
		Insert(loadHistoryTable).
		Columns("run_id", "source_file", "entity", "records_loaded", "records_skipped", "status").
		Values(
			entry.RunID,
			entry.SourceFile,
			string(entry.Entity),
			entry.RecordsLoaded,
			entry.RecordsSkipped,
			string(entry.Status),
		).
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

// Summary agrega o histórico de cargas por dia e entidade
func (r *loadHistoryRepository) Summary() ([]*domain.LoadBatchSummary, error) {
	query, args, err := squirrel.
		Select(
			"DATE(load_timestamp)::text AS load_date",
			"entity",
			"COUNT(*) AS batches",
			"COALESCE(SUM(records_loaded), 0) AS total_records",
			"COALESCE(SUM(records_skipped), 0) AS total_skipped",
		).
		From(loadHistoryTable).
		GroupBy("load_date", "entity").
		OrderBy("load_date DESC", "entity ASC").
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

	summaries := make([]*domain.LoadBatchSummary, 0)
	for rows.Next() {
		summary := &domain.LoadBatchSummary{}
		err := rows.Scan(
			&summary.LoadDate,
			&summary.Entity,
			&summary.Batches,
			&summary.TotalRecords,
			&summary.TotalSkipped,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo de cargas: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}
