// FILE: internal/service/autopilot_service.go
package service

import (
	"context"
	"sync/atomic"
	"time"

	"ai-research-be/internal/pkg/logger"
)

// autopilotTopics rotate when auto-research is enabled.
var autopilotTopics = []string{
	"artificial intelligence",
	"climate change solutions",
	"healthcare innovation",
	"cybersecurity threats",
	"quantum computing",
}

type IAutopilotService interface {
	Start(ctx context.Context)
}

// autopilotService starts a research session on a rotating topic at a
// fixed interval. It never overlaps its own sessions: a tick is skipped
// while the previous autopilot session is still running.
type autopilotService struct {
	research IResearchService
	logger   logger.ILogger
	interval time.Duration
	running  atomic.Bool
}

func NewAutopilotService(research IResearchService, log logger.ILogger, interval time.Duration) IAutopilotService {
	return &autopilotService{
		research: research,
		logger:   log,
		interval: interval,
	}
}

func (a *autopilotService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()

		next := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !a.running.CompareAndSwap(false, true) {
					a.logger.Debug("Autopilot", "Previous auto session still running, skipping tick", nil)
					continue
				}
				topic := autopilotTopics[next%len(autopilotTopics)]
				next++

				go func(topic string) {
					defer a.running.Store(false)
					a.logger.Info("Autopilot", "Starting auto research session", map[string]interface{}{"topic": topic})
					if _, err := a.research.StartSession(ctx, topic); err != nil {
						a.logger.Warn("Autopilot", "Auto research session failed", map[string]interface{}{
							"topic": topic, "error": err.Error(),
						})
					}
				}(topic)
			}
		}
	}()
}
