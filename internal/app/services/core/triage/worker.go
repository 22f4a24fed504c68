package triage

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const fallbackRefreshSpec = "@every 1m"

// Worker periodically refreshes the pending lists held by a Registry so that
// requests created elsewhere show up without a manual reload.
type Worker struct {
	log      *zap.Logger
	registry *Registry
	spec     string
	limiter  *rate.Limiter
	cron     *cron.Cron
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// NewWorker builds a refresh worker. refreshesPerSecond bounds how many
// pending lists are reloaded per second; zero or less disables pacing.
func NewWorker(log *zap.Logger, registry *Registry, spec string, refreshesPerSecond int) *Worker {
	w := &Worker{log: log, registry: registry, spec: spec}
	if refreshesPerSecond > 0 {
		w.limiter = rate.NewLimiter(rate.Limit(refreshesPerSecond), refreshesPerSecond)
	}
	return w
}

func (w *Worker) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	c := cron.New()
	if _, err := c.AddFunc(w.spec, func() { w.runOnce(runCtx) }); err != nil {
		w.log.Warn("triage.worker: invalid cron spec, falling back",
			zap.String("spec", w.spec),
			zap.String("fallback", fallbackRefreshSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackRefreshSpec, func() { w.runOnce(runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight refreshes and waits for the running job to return.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		if w.cancel != nil {
			w.cancel()
		}
		if w.cron != nil {
			<-w.cron.Stop().Done()
		}
	})
}

func (w *Worker) runOnce(ctx context.Context) {
	controllers := len(w.registry.Controllers())
	if controllers == 0 {
		return
	}
	failed := w.registry.RefreshAll(ctx, w.limiter)
	if failed > 0 {
		w.log.Warn("triage.worker: some pending lists failed to refresh",
			zap.Int("controllers", controllers),
			zap.Int("failed", failed),
		)
		return
	}
	w.log.Debug("triage.worker: pending lists refreshed", zap.Int("controllers", controllers))
}
