package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/powerapps-data-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
)

const (
	customerFeedbackTable = "customer_feedback"
)

type CustomerFeedbackRepository interface {
	SaveOrUpdate(feedback *domain.CustomerFeedback) error
}

type customerFeedbackRepository struct {
	conn *postgres.Connection
}

func NewCustomerFeedbackRepository(conn *postgres.Connection) CustomerFeedbackRepository {
	return &customerFeedbackRepository{
		conn: conn,
	}
}

// SaveOrUpdate insere ou atualiza um feedback pela chave primária (upsert idempotente)
func (r *customerFeedbackRepository) SaveOrUpdate(feedback *domain.CustomerFeedback) error {
	query := squirrel.StatementBuilder.
		Insert(customerFeedbackTable).
		Columns(
			"feedback_id", "customer", "feedback_type", "rating", "comment",
			"submitted_date", "responded", "response_days", "source",
			"sentiment", "has_comment", "responded_within_2days", "submitted_month",
		).
		Values(
			feedback.FeedbackID,
			feedback.Customer,
			feedback.FeedbackType,
			feedback.Rating,
			feedback.Comment,
			feedback.SubmittedDate,
			feedback.Responded,
			feedback.ResponseDays,
			feedback.Source,
			feedback.Sentiment,
			feedback.HasComment,
			feedback.RespondedWithin2Days,
			feedback.SubmittedMonth,
		).
		Suffix(`
			ON CONFLICT (feedback_id) DO UPDATE SET
				customer = EXCLUDED.customer,
				feedback_type = EXCLUDED.feedback_type,
				rating = EXCLUDED.rating,
				comment = EXCLUDED.comment,
				submitted_date = EXCLUDED.submitted_date,
				responded = EXCLUDED.responded,
				response_days = EXCLUDED.response_days,
				source = EXCLUDED.source,
				sentiment = EXCLUDED.sentiment,
				has_comment = EXCLUDED.has_comment,
				responded_within_2days = EXCLUDED.responded_within_2days,
				submitted_month = EXCLUDED.submitted_month,
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
