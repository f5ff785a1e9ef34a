package splithttp

import (
	"encoding/json"
	"net/http"
)

// healthResp — payload ответа /health.
type healthResp struct {
	Status        string `json:"status"`
	FFmpeg        string `json:"ffmpeg"`
	FFmpegVersion string `json:"ffmpeg_version"`
	Detail        string `json:"detail,omitempty"`
}

// health возвращает доступность ffmpeg и первую строку его версии.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	hs := s.SplitService.CheckHealth(r.Context())

	resp := healthResp{
		Status:        "healthy",
		FFmpeg:        "available",
		FFmpegVersion: hs.Version,
	}
	if !hs.Healthy {
		resp.Status = "unhealthy"
		resp.FFmpeg = "not available"
		resp.Detail = hs.Detail
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
