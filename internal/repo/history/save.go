package history

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/yourname/audiosplit_lite/internal/models"
)

// Save записывает результат нарезки в историю.
func (s *PGStore) Save(ctx context.Context, rec models.SplitRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("record id is empty")
	}

	sqlStr, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(historyTable).
		Columns("id", "file_name", "original_size", "total_chunks", "success", "message", "created_at").
		Values(rec.ID, rec.FileName, rec.OriginalSize, rec.TotalChunks, rec.Success, rec.Message, rec.CreatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := s.pool.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("exec insert: %w", err)
	}

	return nil
}
