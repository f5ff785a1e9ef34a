package splitsvc

import (
	"context"
	"log/slog"
	"time"

	"github.com/yourname/audiosplit_lite/internal/ffmpeg"
	"github.com/yourname/audiosplit_lite/internal/metrics"
	"github.com/yourname/audiosplit_lite/internal/models"
	"github.com/yourname/audiosplit_lite/internal/workspace"
)

type (
	// History хранилище записей о выполненных нарезках
	History interface {
		Save(ctx context.Context, rec models.SplitRecord) error
		List(ctx context.Context, limit int) ([]models.SplitRecord, error)
	}

	// Service объединяет операции нарезки и проверки здоровья инструмента.
	Service interface {
		Split(ctx context.Context, upload models.Upload) (models.SplitResult, error)
		CheckHealth(ctx context.Context) models.HealthStatus
	}
)

type Deps struct {
	Runner         ffmpeg.Runner
	Workspaces     *workspace.Manager
	History        History
	Metrics        *metrics.Metrics
	Log            *slog.Logger
	SegmentSeconds int
	SplitTimeout   time.Duration
}

type Splitter struct {
	Deps
}

// New конструирует сервис нарезки с заданными зависимостями.
func New(deps Deps) *Splitter {
	if deps.SegmentSeconds <= 0 {
		deps.SegmentSeconds = 600
	}
	if deps.SplitTimeout <= 0 {
		deps.SplitTimeout = 300 * time.Second
	}
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	return &Splitter{Deps: deps}
}

var _ Service = (*Splitter)(nil)
