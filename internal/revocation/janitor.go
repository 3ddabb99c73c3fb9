package revocation

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Janitor periodically purges expired revocations until Shutdown is called.
type Janitor struct {
	purger   Purger
	interval time.Duration
	stop     chan struct{}
	wg       sync.WaitGroup
}

func NewJanitor(purger Purger, interval time.Duration) *Janitor {
	j := &Janitor{
		purger:   purger,
		interval: interval,
		stop:     make(chan struct{}),
	}

	j.wg.Add(1)
	go j.loop()

	return j
}

func (j *Janitor) loop() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.purgeOnce()
		case <-j.stop:
			return
		}
	}
}

func (j *Janitor) purgeOnce() {
	removed, err := j.purger.PurgeExpired(context.Background())
	if err != nil {
		slog.Error("revocation purge failed", "error", err)
		return
	}
	if removed > 0 {
		slog.Debug("purged expired revocations", "count", removed)
	}
}

func (j *Janitor) Shutdown(ctx context.Context) {
	close(j.stop)

	done := make(chan struct{})
	go func() {
		j.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("revocation janitor stopped")
	case <-ctx.Done():
		slog.Warn("revocation janitor shutdown timed out")
	}
}
