package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LogEntry is one append-only record of an answered question. Source is
// the model tier that produced the answer, or "faq" when the FAQ index
// short-circuited the request.
type LogEntry struct {
	CreatedAt        time.Time
	UserID           string
	Source           string
	Question         string
	Answer           string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Cost             decimal.Decimal
	Partitions       []string
	FAQMatch         bool
}
