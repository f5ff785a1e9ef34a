package splitsvc

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yourname/audiosplit_lite/internal/models"
	"github.com/yourname/audiosplit_lite/internal/workspace"
)

// collectSegments находит выходные файлы по префиксу, присваивает индексы в
// лексикографическом порядке имён и кодирует содержимое в base64. Чтение
// файлов идёт параллельно, порядок результата фиксирован заранее.
func (s *Splitter) collectSegments(ctx context.Context, ws *workspace.Workspace) ([]models.Segment, error) {
	// os.ReadDir отдаёт записи уже отсортированными по имени.
	entries, err := os.ReadDir(ws.Dir())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrFileSave, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), segmentPrefix) {
			continue
		}
		names = append(names, e.Name())
	}

	segments := make([]models.Segment, len(names))
	eg, egCtx := errgroup.WithContext(ctx)
	for idx, name := range names {
		idx, name := idx, name
		eg.Go(func() error {
			if egCtx.Err() != nil {
				return egCtx.Err()
			}

			b, err := os.ReadFile(ws.Path(name))
			if err != nil {
				return fmt.Errorf("%w: %v", models.ErrFileSave, err)
			}

			segments[idx] = models.Segment{
				Index:    idx,
				Data:     base64.StdEncoding.EncodeToString(b),
				FileName: name,
				Size:     int64(len(b)),
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return segments, nil
}
