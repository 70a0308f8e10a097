package recency

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/storage/file"
	"github.com/sandevgo/taalbot/internal/storage/sqlite"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func (c *clock) advance(days int) { c.t = c.t.AddDate(0, 0, days) }

func newStore(t *testing.T) (*Store, *clock) {
	t.Helper()
	db, err := sqlite.NewDB(context.Background(), filepath.Join(t.TempDir(), "recency.db"))
	require.NoError(t, err)

	c := &clock{t: time.Date(2026, 10, 19, 21, 30, 0, 0, time.UTC)}
	s := New(sqlite.NewRecencyRepo(db), DefaultWindowDays, WithClock(c.Now))
	t.Cleanup(func() { _ = s.Close() })
	return s, c
}

func TestStore_RecentAlwaysIncludesToday(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	require.NoError(t, s.Record(ctx, core.KindDictate, "Het regent vandaag."))

	got, err := s.Recent(ctx, core.KindDictate)
	require.NoError(t, err)
	assert.Equal(t, []string{"Het regent vandaag."}, got)
}

func TestStore_RecentDropsTextsOlderThanWindow(t *testing.T) {
	ctx := context.Background()
	s, c := newStore(t)

	require.NoError(t, s.Record(ctx, core.KindTranslation, "eight days ago"))
	c.advance(1)
	require.NoError(t, s.Record(ctx, core.KindTranslation, "seven days ago"))
	c.advance(7)
	require.NoError(t, s.Record(ctx, core.KindTranslation, "today"))

	got, err := s.Recent(ctx, core.KindTranslation)
	require.NoError(t, err)
	assert.Equal(t, []string{"seven days ago", "today"}, got)
}

func TestStore_RecordSkipsEmptyText(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	require.NoError(t, s.Record(ctx, core.KindDictate, ""))

	got, err := s.Recent(ctx, core.KindDictate)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Prune(t *testing.T) {
	ctx := context.Background()
	s, c := newStore(t)

	require.NoError(t, s.Record(ctx, core.KindDictate, "old"))
	c.advance(30)
	require.NoError(t, s.Record(ctx, core.KindDictate, "new"))

	n, err := s.Prune(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.RecentWithin(ctx, core.KindDictate, 365)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got)

	_, err = s.Prune(ctx, -1)
	assert.Error(t, err)
}

func TestStore_ImportSkipsMalformedDays(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	n, err := s.Import(ctx, file.Document{
		core.KindTranslation: {
			"2026-10-18": {"gisteren", ""},
			"last week":  {"ignored"},
		},
		core.KindDictate: {
			"2026-10-19": {"vandaag"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	tr, err := s.Recent(ctx, core.KindTranslation)
	require.NoError(t, err)
	assert.Equal(t, []string{"gisteren"}, tr)

	dc, err := s.Recent(ctx, core.KindDictate)
	require.NoError(t, err)
	assert.Equal(t, []string{"vandaag"}, dc)
}
