package keepalive

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"healthcamp-service/internal/app/config"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackCronSpec = "@every 4m"

// Worker periodically calls the service's own liveness URL so that hosting
// platforms which idle quiet instances keep it running. Failures are only logged.
type Worker struct {
	log    *zap.Logger
	cfg    *config.InternalConfig
	client *http.Client
	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig) *Worker {
	return &Worker{
		log: log,
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.KeepAlive.TimeoutInSeconds) * time.Second,
		},
	}
}

// Start schedules the ping. It does nothing when no URL is configured.
func (w *Worker) Start(ctx context.Context) {
	if w.cfg.KeepAlive.URL == "" {
		w.log.Info("keepalive.worker: no url configured; worker disabled")
		return
	}

	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.KeepAlive.CronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("keepalive.worker: failed to schedule with provided cron spec; falling back to default",
			zap.String(constvars.LoggingKeepAliveCronKey, spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	w.log.Info("keepalive.worker: started",
		zap.String(constvars.LoggingKeepAliveURLKey, w.cfg.KeepAlive.URL),
		zap.String(constvars.LoggingKeepAliveCronKey, spec),
	)
}

// Stop cancels any in-flight ping and waits for the scheduler to drain.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	err := w.ping(ctx)
	metrics.RecordKeepAlivePing(err == nil)
	if err != nil {
		w.log.Warn("keepalive.worker: ping failed",
			zap.String(constvars.LoggingKeepAliveURLKey, w.cfg.KeepAlive.URL),
			zap.Error(err),
		)
		return
	}
	w.log.Debug("keepalive.worker: ping succeeded",
		zap.String(constvars.LoggingKeepAliveURLKey, w.cfg.KeepAlive.URL),
	)
}

func (w *Worker) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.cfg.KeepAlive.URL, nil)
	if err != nil {
		return err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
