package domain

import (
	"time"
)

// Sentimentos derivados da nota do cliente
const (
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
	SentimentPositive = "Positive"
)

// CustomerFeedback representa uma linha da tabela customer_feedback do warehouse
type CustomerFeedback struct {
	FeedbackID    string    `json:"feedback_id"`
	Customer      string    `json:"customer"`
	FeedbackType  string    `json:"feedback_type"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	SubmittedDate time.Time `json:"submitted_date"`
	Responded     bool      `json:"responded"`
	ResponseDays  *int      `json:"response_days"`
	Source        string    `json:"source"`

	// Campos derivados na transformação
	Sentiment            string `json:"sentiment"`
	HasComment           bool   `json:"has_comment"`
	RespondedWithin2Days bool   `json:"responded_within_2days"`
	SubmittedMonth       string `json:"submitted_month"`

	LoadedAt time.Time `json:"loaded_at"`
}
