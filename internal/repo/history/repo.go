// Package history хранит записи о выполненных нарезках: в памяти либо в
// Postgres, когда настроен meta_dsn.
package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

const historyTable = "split_history"

// PGStore сохраняет историю сплитов в Postgres.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore создаёт подключение к Postgres.
func NewPGStore(ctx context.Context, dsn string) (*PGStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("meta dsn is empty")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	return &PGStore{
		pool: pool,
	}, nil
}

// Close освобождает подключения пула.
func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
