package transforming

import (
	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
	"github.com/vfg2006/powerapps-data-pipeline/pkg/utils"
)

// transformFeedbackRow valida uma linha bruta de feedback e deriva os campos
// calculados do warehouse
func transformFeedbackRow(row domain.RawRow) (*domain.CustomerFeedback, error) {
	reader := rowReader{row: row}

	feedbackID, err := reader.requireString("feedback_id")
	if err != nil {
		return nil, err
	}

	rating, err := reader.intField("rating")
	if err != nil {
		return nil, err
	}

	submittedDate, err := reader.dateField("submitted_date")
	if err != nil {
		return nil, err
	}

	responded, err := reader.boolField("responded")
	if err != nil {
		return nil, err
	}

	responseDays, err := reader.optionalIntField("response_days")
	if err != nil {
		return nil, err
	}

	comment := reader.stringField("comment")

	feedback := &domain.CustomerFeedback{
		FeedbackID:    feedbackID,
		Customer:      reader.stringField("customer"),
		FeedbackType:  reader.stringField("feedback_type"),
		Rating:        rating,
		Comment:       comment,
		SubmittedDate: submittedDate,
		Responded:     responded,
		ResponseDays:  responseDays,
		Source:        reader.stringField("source"),
	}

	feedback.Sentiment = sentiment(rating)
	feedback.HasComment = comment != ""
	feedback.RespondedWithin2Days = responded && responseDays != nil && *responseDays <= 2
	feedback.SubmittedMonth = utils.MonthKey(submittedDate)

	return feedback, nil
}

func sentiment(rating int) string {
	switch {
	case rating <= 2:
		return domain.SentimentNegative
	case rating == 3:
		return domain.SentimentNeutral
	}
	return domain.SentimentPositive
}
