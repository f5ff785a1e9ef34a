package splitsvc

import (
	"context"
	"time"

	"github.com/yourname/audiosplit_lite/internal/models"
)

const healthTimeout = 5 * time.Second

// CheckHealth дергает `ffmpeg -version` под коротким таймаутом. Воркспейсы
// при этом не затрагиваются.
func (s *Splitter) CheckHealth(ctx context.Context) models.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	version, err := s.Runner.Version(ctx)
	if err != nil {
		return models.HealthStatus{
			Healthy: false,
			Detail:  err.Error(),
		}
	}

	return models.HealthStatus{
		Healthy: true,
		Version: version,
	}
}
