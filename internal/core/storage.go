package core

import (
	"context"
	"time"
)

// RecencyRepository persists generated texts bucketed by kind and calendar day.
//
// Record must be idempotent for an identical (kind, day, text) triple.
// Recent returns the distinct texts of every bucket dated on or after since,
// oldest bucket first, insertion order within a bucket.
type RecencyRepository interface {
	Record(ctx context.Context, kind string, day time.Time, text string) error
	Recent(ctx context.Context, kind string, since time.Time) ([]string, error)
	Prune(ctx context.Context, before time.Time) (int, error)
	Close() error
}

const (
	KindTranslation = "translation"
	KindDictate     = "dictate"
)
