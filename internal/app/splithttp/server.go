package splithttp

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yourname/audiosplit_lite/internal/config"
	"github.com/yourname/audiosplit_lite/internal/ffmpeg"
	"github.com/yourname/audiosplit_lite/internal/metrics"
	"github.com/yourname/audiosplit_lite/internal/repo/history"
	"github.com/yourname/audiosplit_lite/internal/usecase/splitsvc"
	"github.com/yourname/audiosplit_lite/internal/workspace"
)

type Server struct {
	SplitService splitsvc.Service
	History      splitsvc.History
	Cfg          *config.Config
	registry     *prometheus.Registry
}

// NewServer конструктор
func NewServer(cfg *config.Config) (http.Handler, *Server, error) {
	svc, hist, registry, err := buildSplitService(cfg)
	if err != nil {
		return nil, nil, err
	}

	srv := &Server{
		SplitService: svc,
		History:      hist,
		Cfg:          cfg,
		registry:     registry,
	}

	return srv.routes(), srv, nil
}

// routes регистрирует обработчики нарезки, здоровья и служебных эндпоинтов.
func (s *Server) routes() http.Handler {
	rtr := chi.NewRouter()

	rtr.Get("/", s.root)
	rtr.Post("/split", s.postSplit)
	rtr.Get("/health", s.health)
	rtr.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	rtr.Get("/admin/config", s.adminConfig)
	rtr.Get("/admin/history", s.adminHistory)
	rtr.Post("/admin/gc", s.adminGC)

	return rtr
}

func buildSplitService(cfg *config.Config) (splitsvc.Service, splitsvc.History, *prometheus.Registry, error) {
	wsm, err := workspace.NewManager(cfg.WorkDir)
	if err != nil {
		return nil, nil, nil, err
	}

	hist, err := buildHistory(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	registry := prometheus.NewRegistry()
	svc := splitsvc.New(splitsvc.Deps{
		Runner:         ffmpeg.NewExecRunner(cfg.FFmpegBin),
		Workspaces:     wsm,
		History:        hist,
		Metrics:        metrics.New(registry),
		SegmentSeconds: cfg.SegmentSeconds,
		SplitTimeout:   time.Duration(cfg.SplitTimeoutSec) * time.Second,
	})

	return svc, hist, registry, nil
}

// buildHistory выбирает хранилище истории: Postgres при настроенном DSN,
// иначе память.
func buildHistory(cfg *config.Config) (splitsvc.History, error) {
	dsn := strings.TrimSpace(cfg.MetaDSN)
	if dsn == "" || strings.HasPrefix(dsn, "memory://") {
		return history.NewMemoryStore(), nil
	}
	return history.NewPGStore(context.Background(), dsn)
}
