package repository

import (
	"context"
	"fmt"

	"github.com/escapecenter/conciergebot/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatLogRepository appends answered questions to the conversation log.
type ChatLogRepository struct {
	db *pgxpool.Pool
}

func NewChatLogRepository(db *pgxpool.Pool) *ChatLogRepository {
	return &ChatLogRepository{db: db}
}

func (r *ChatLogRepository) Record(ctx context.Context, entry domain.LogEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO conversation_log
			(user_id, source, question, answer, prompt_tokens, completion_tokens, total_tokens, cost, partitions, faq_match)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		entry.UserID,
		entry.Source,
		entry.Question,
		entry.Answer,
		entry.PromptTokens,
		entry.CompletionTokens,
		entry.TotalTokens,
		entry.Cost.String(),
		entry.Partitions,
		entry.FAQMatch,
	)
	if err != nil {
		return fmt.Errorf("insert conversation log: %w", err)
	}
	return nil
}
