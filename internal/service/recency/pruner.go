package recency

import (
	"context"
	"time"

	"github.com/sandevgo/taalbot/pkg/srv"
)

// NewPruner returns a service that drops buckets older than retainDays once per interval.
func NewPruner(store *Store, retainDays int, interval time.Duration) *srv.Ticker {
	return srv.NewTicker("recency-prune", interval, func(ctx context.Context) error {
		_, err := store.Prune(ctx, retainDays)
		return err
	})
}
