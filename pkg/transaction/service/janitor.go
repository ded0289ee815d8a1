package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Janitor periodically removes transactions past the retention period.
type Janitor struct {
	svc       Service
	retention time.Duration
	logger    *zap.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewJanitor creates a janitor that clears transactions older than retention.
func NewJanitor(svc Service, retention time.Duration, logger *zap.Logger) *Janitor {
	return &Janitor{
		svc:       svc,
		retention: retention,
		logger:    logger,
		stopCh:    make(chan struct{}),
	}
}

// Days returns the retention in whole days, at least one.
func (j *Janitor) Days() int {
	return max(int(j.retention/(24*time.Hour)), 1)
}

// RunOnce clears expired transactions and returns how many were removed.
func (j *Janitor) RunOnce(ctx context.Context) int {
	n := j.svc.ClearOld(ctx, j.Days())
	if n > 0 {
		j.logger.Info("Cleared expired transactions", zap.Int("removed", n))
	}
	return n
}

// Start runs the janitor every interval in a background goroutine.
func (j *Janitor) Start(interval time.Duration) {
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		j.logger.Info("Started transaction janitor",
			zap.Duration("interval", interval),
			zap.Int("retention_days", j.Days()))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
				j.RunOnce(ctx)
				cancel()
			case <-j.stopCh:
				j.logger.Info("Stopping transaction janitor")
				return
			}
		}
	}()
}

// Stop halts the janitor and waits for it to exit. Safe to call more than once.
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() { close(j.stopCh) })
	j.wg.Wait()
}
