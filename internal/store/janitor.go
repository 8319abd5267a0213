package store

import (
	"context"
	"log/slog"
	"time"

	"revcheck.app/checker/common/logger"
)

// Janitor periodically evicts expired sessions.
type Janitor struct {
	store    SessionStore
	interval time.Duration
	now      func() time.Time

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func NewJanitor(store SessionStore, interval time.Duration) *Janitor {
	return &Janitor{
		store:     store,
		interval:  interval,
		now:       time.Now,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Run starts the eviction loop. Blocks until Stop() is called or ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "revcheck.store.janitor",
	})

	defer close(j.stoppedCh)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "session janitor started", "interval", j.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-j.stopCh:
			slog.InfoContext(ctx, "session janitor stopping")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

// Stop signals the janitor to stop and waits for it to exit.
func (j *Janitor) Stop() {
	close(j.stopCh)
	<-j.stoppedCh
}

func (j *Janitor) sweep(ctx context.Context) {
	removed, err := j.store.DeleteExpired(ctx, j.now())
	if err != nil {
		slog.ErrorContext(ctx, "session sweep failed", "error", err)
		return
	}
	if removed > 0 {
		slog.InfoContext(ctx, "expired sessions removed", "count", removed)
	}
}
