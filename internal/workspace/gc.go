package workspace

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// StartGC стартует периодическую уборку воркспейсов, переживших своих
// владельцев (падение процесса посреди запроса). Возвращает stop-функцию.
func StartGC(root string, ttl time.Duration, every time.Duration) func() {
	if every <= 0 || ttl <= 0 {
		return func() {}
	}

	ticker := time.NewTicker(every)
	stop := make(chan struct{})
	var once sync.Once
	go func() {
		for {
			select {
			case <-ticker.C:
				_ = SweepOnce(root, ttl)
			case <-stop:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		once.Do(func() {
			close(stop)
		})
	}
}

// SweepOnce удаляет подкаталоги корня старше ttl. Живые воркспейсы моложе
// таймаута сплита, поэтому под уборку не попадают.
func SweepOnce(root string, ttl time.Duration) error {
	now := time.Now()
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}

		if now.Sub(info.ModTime()) < ttl {
			continue
		}

		_ = os.RemoveAll(filepath.Join(root, e.Name()))
	}

	return nil
}
