package recency

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/storage/file"
	"github.com/sandevgo/taalbot/pkg/log"
)

const DefaultWindowDays = 7

// Store answers "what was produced recently" on top of a RecencyRepository.
// Days are calendar days in the local time zone of the clock.
type Store struct {
	repo       core.RecencyRepository
	windowDays int
	now        func() time.Time
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(repo core.RecencyRepository, windowDays int, opts ...Option) *Store {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	s := &Store{
		repo:       repo,
		windowDays: windowDays,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Record stores text under today's bucket for kind.
func (s *Store) Record(ctx context.Context, kind, text string) error {
	if text == "" {
		return nil
	}
	return s.repo.Record(ctx, kind, s.today(), text)
}

// Recent returns the texts of kind recorded within the window, today included.
func (s *Store) Recent(ctx context.Context, kind string) ([]string, error) {
	return s.RecentWithin(ctx, kind, s.windowDays)
}

func (s *Store) RecentWithin(ctx context.Context, kind string, days int) ([]string, error) {
	since := s.today().AddDate(0, 0, -days)
	return s.repo.Recent(ctx, kind, since)
}

// Prune removes buckets dated more than olderThanDays before today.
func (s *Store) Prune(ctx context.Context, olderThanDays int) (int, error) {
	if olderThanDays < 0 {
		return 0, fmt.Errorf("invalid retention: %d days", olderThanDays)
	}
	before := s.today().AddDate(0, 0, -olderThanDays)
	n, err := s.repo.Prune(ctx, before)
	if err != nil {
		return 0, err
	}
	log.FromCtx(ctx).Info().Int("removed", n).Str("before", before.Format(core.DayLayout)).Msg("recency log pruned")
	return n, nil
}

// Import copies a legacy memory.json document into the repository.
// Buckets whose key is not an ISO date are skipped.
func (s *Store) Import(ctx context.Context, doc file.Document) (int, error) {
	logger := log.FromCtx(ctx)
	imported := 0
	for kind, buckets := range doc {
		for key, texts := range buckets {
			day, err := time.ParseInLocation(core.DayLayout, key, s.now().Location())
			if err != nil {
				logger.Warn().Str("kind", kind).Str("day", key).Msg("skipping malformed recency bucket")
				continue
			}
			for _, text := range texts {
				if text == "" {
					continue
				}
				if err := s.repo.Record(ctx, kind, day, text); err != nil {
					return imported, fmt.Errorf("failed to import %s/%s: %w", kind, key, err)
				}
				imported++
			}
		}
	}
	return imported, nil
}

func (s *Store) Close() error {
	return s.repo.Close()
}
