package splitsvc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/audiosplit_lite/internal/ffmpeg"
	"github.com/yourname/audiosplit_lite/internal/models"
)

const (
	defaultExt    = ".m4a"
	inputBaseName = "input"
	segmentPrefix = "seg"
	// Трёхзначный ординал: лексикографический порядок имён совпадает с
	// порядком сегментов, потолок — 1000 сегментов на один сплит.
	segmentPattern = segmentPrefix + "%03d"
)

// Split прогоняет загруженный файл через полный цикл: приватный воркспейс,
// запись входа, вызов ffmpeg с таймаутом, сбор сегментов. Воркспейс
// удаляется на любом исходе.
func (s *Splitter) Split(ctx context.Context, upload models.Upload) (models.SplitResult, error) {
	started := time.Now()
	res, err := s.split(ctx, upload)
	s.observe(ctx, upload, res, err, time.Since(started))
	if err != nil {
		return models.SplitResult{}, err
	}
	return res, nil
}

func (s *Splitter) split(ctx context.Context, upload models.Upload) (models.SplitResult, error) {
	ws, err := s.Workspaces.Acquire()
	if err != nil {
		return models.SplitResult{}, fmt.Errorf("%w: %v", models.ErrFileSave, err)
	}
	defer ws.Release()

	ext := extensionOf(upload.FileName)
	inputPath := ws.Path(inputBaseName + ext)
	if err := os.WriteFile(inputPath, upload.Content, 0o644); err != nil {
		return models.SplitResult{}, fmt.Errorf("%w: %v", models.ErrFileSave, err)
	}

	runCtx, cancel := context.WithTimeout(ctx, s.SplitTimeout)
	defer cancel()

	err = s.Runner.Segment(runCtx, ffmpeg.SegmentRequest{
		InputPath:      inputPath,
		OutputPattern:  ws.Path(segmentPattern + ext),
		SegmentSeconds: s.SegmentSeconds,
	})
	if err != nil {
		return models.SplitResult{}, err
	}

	segments, err := s.collectSegments(ctx, ws)
	if err != nil {
		return models.SplitResult{}, err
	}

	return models.SplitResult{
		Success:      true,
		TotalChunks:  len(segments),
		Chunks:       segments,
		OriginalSize: int64(len(upload.Content)),
		Message:      fmt.Sprintf("split into %d segments", len(segments)),
	}, nil
}

// observe фиксирует исход в метриках, истории и логе. История пишется даже
// если контекст запроса уже истёк.
func (s *Splitter) observe(ctx context.Context, upload models.Upload, res models.SplitResult, err error, elapsed time.Duration) {
	if s.Metrics != nil {
		s.Metrics.SplitsTotal.Inc()
		s.Metrics.SplitDuration.Observe(elapsed.Seconds())
		if err != nil {
			s.Metrics.SplitFailures.WithLabelValues(models.FailureKind(err)).Inc()
		} else {
			s.Metrics.SegmentsProduced.Add(float64(res.TotalChunks))
		}
	}

	message := res.Message
	if err != nil {
		message = err.Error()
		s.Log.Error("split failed",
			"file", upload.FileName,
			"size", len(upload.Content),
			"kind", models.FailureKind(err),
			"error", err,
		)
	} else {
		s.Log.Info("split done",
			"file", upload.FileName,
			"size", len(upload.Content),
			"chunks", res.TotalChunks,
			"elapsed", elapsed,
		)
	}

	if s.History == nil {
		return
	}
	rec := models.SplitRecord{
		ID:           uuid.NewString(),
		FileName:     upload.FileName,
		OriginalSize: int64(len(upload.Content)),
		TotalChunks:  res.TotalChunks,
		Success:      err == nil,
		Message:      message,
		CreatedAt:    time.Now().UTC(),
	}
	if saveErr := s.History.Save(context.WithoutCancel(ctx), rec); saveErr != nil {
		s.Log.Warn("history save failed", "error", saveErr)
	}
}

// extensionOf достаёт расширение из заявленного имени файла либо отдаёт дефолт.
func extensionOf(name string) string {
	ext := filepath.Ext(filepath.Base(strings.TrimSpace(name)))
	if ext == "" || ext == "." {
		return defaultExt
	}
	return ext
}
