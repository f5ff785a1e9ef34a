// Package workspace выдаёт каждому запросу собственный временный каталог
// под входной файл и нарезанные сегменты. Каталоги именуются UUID'ами,
// поэтому параллельные запросы не видят файлов друг друга.
package workspace

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Manager создаёт и удаляет каталоги-воркспейсы под общим корнем.
type Manager struct {
	root string
}

// NewManager гарантирует наличие корневого каталога и возвращает менеджер.
func NewManager(root string) (*Manager, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Manager{root: root}, nil
}

// Acquire создаёт новый уникальный воркспейс.
func (m *Manager) Acquire() (*Workspace, error) {
	dir := filepath.Join(m.root, uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Workspace{dir: dir}, nil
}

// Workspace — приватный каталог одного запроса.
type Workspace struct {
	dir string
}

// Dir возвращает путь каталога воркспейса.
func (w *Workspace) Dir() string {
	return w.dir
}

// Path строит путь к файлу внутри воркспейса.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Release рекурсивно удаляет воркспейс. Повторный вызов безопасен.
func (w *Workspace) Release() {
	_ = os.RemoveAll(w.dir)
}
