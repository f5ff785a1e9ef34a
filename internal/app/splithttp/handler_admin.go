package splithttp

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/yourname/audiosplit_lite/internal/workspace"
	"github.com/yourname/audiosplit_lite/pkg/httperrors"
)

// adminConfig отдаёт текущую конфигурацию as-is.
func (s *Server) adminConfig(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.Cfg)
}

// adminHistory возвращает последние записи истории нарезок.
func (s *Server) adminHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httperrors.WriteDetail(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	records, err := s.History.List(r.Context(), limit)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"records": records,
		"count":   len(records),
	})
}

// adminGC вручную запускает уборку осиротевших воркспейсов.
func (s *Server) adminGC(w http.ResponseWriter, _ *http.Request) {
	ttl := time.Duration(s.Cfg.GCTTLMin) * time.Minute
	_ = workspace.SweepOnce(s.Cfg.WorkDir, ttl)
	w.WriteHeader(http.StatusNoContent)
}
