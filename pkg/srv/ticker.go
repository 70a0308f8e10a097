package srv

import (
	"context"
	"sync"
	"time"

	"github.com/sandevgo/taalbot/pkg/log"
)

// Ticker runs a job periodically until its context is done or it is shut down.
type Ticker struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context) error

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewTicker(name string, interval time.Duration, job func(ctx context.Context) error) *Ticker {
	return &Ticker{
		name:     name,
		interval: interval,
		job:      job,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start blocks until ctx is cancelled or Shutdown is called.
func (t *Ticker) Start(ctx context.Context) error {
	defer close(t.done)

	logger := log.FromCtx(ctx)
	logger.Debug().Str("job", t.name).Dur("interval", t.interval).Msg("ticker started")

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.stop:
			return nil
		case <-ticker.C:
			if err := t.job(ctx); err != nil {
				logger.Error().Err(err).Str("job", t.name).Msg("periodic job failed")
			}
		}
	}
}

// Shutdown stops the loop and waits for a running job to finish.
func (t *Ticker) Shutdown(ctx context.Context) error {
	t.stopOnce.Do(func() { close(t.stop) })

	select {
	case <-t.done:
	case <-time.After(5 * time.Second):
	}
	return nil
}
