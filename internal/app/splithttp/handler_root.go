package splithttp

import (
	"encoding/json"
	"net/http"
)

// serviceInfo — статичное описание сервиса для корневого эндпоинта.
type serviceInfo struct {
	Service   string   `json:"service"`
	Endpoints []string `json:"endpoints"`
}

func (s *Server) root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(serviceInfo{
		Service: "audiosplit",
		Endpoints: []string{
			"POST /split",
			"GET /health",
			"GET /metrics",
		},
	})
}
