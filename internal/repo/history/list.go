package history

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/yourname/audiosplit_lite/internal/models"
)

const defaultListLimit = 50

// List возвращает последние записи истории, новые первыми.
func (s *PGStore) List(ctx context.Context, limit int) ([]models.SplitRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	sqlStr, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id", "file_name", "original_size", "total_chunks", "success", "message", "created_at").
		From(historyTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := s.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []models.SplitRecord
	for rows.Next() {
		var rec models.SplitRecord
		if err := rows.Scan(&rec.ID, &rec.FileName, &rec.OriginalSize, &rec.TotalChunks, &rec.Success, &rec.Message, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
