package history

import (
	"context"
	"sync"

	"github.com/yourname/audiosplit_lite/internal/models"
)

// MemoryStore хранит историю сплитов только в оперативной памяти; удобно для
// тестов и для запуска без базы.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.SplitRecord
}

// NewMemoryStore создаёт пустое in-memory хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save добавляет запись в историю.
func (s *MemoryStore) Save(_ context.Context, rec models.SplitRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// List возвращает до limit последних записей, новые первыми.
func (s *MemoryStore) List(_ context.Context, limit int) ([]models.SplitRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}

	out := make([]models.SplitRecord, 0, limit)
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}
