package repository

import (
	"context"
	"fmt"

	"github.com/escapecenter/conciergebot/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KnowledgeRepository reads raw tabular knowledge rows from Postgres.
type KnowledgeRepository struct {
	db *pgxpool.Pool
}

func NewKnowledgeRepository(db *pgxpool.Pool) *KnowledgeRepository {
	return &KnowledgeRepository{db: db}
}

func (r *KnowledgeRepository) Rows(ctx context.Context, partition string) ([][]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cells FROM knowledge_rows WHERE partition_name = $1 ORDER BY position`,
		partition,
	)
	if err != nil {
		return nil, fmt.Errorf("query knowledge rows: %w", err)
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() {
		var cells []string
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("scan knowledge row: %w", err)
		}
		result = append(result, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read knowledge rows: %w", err)
	}
	if len(result) == 0 {
		return nil, domain.ErrPartitionNotFound
	}
	return result, nil
}
