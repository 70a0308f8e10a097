package kvstore

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/pkg/log"
)

const keyPrefix = "recency/"

// entry is the stored value; the key only carries a digest of the text.
type entry struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// RecencyRepo keeps the recency log in an embedded Badger store under
// keys of the form recency/<kind>/<day>/<sha1(text)>.
type RecencyRepo struct {
	db *badger.DB
}

func NewRecencyRepo(dirPath string) (*RecencyRepo, error) {
	opts := badger.DefaultOptions(dirPath).
		WithLoggingLevel(badger.ERROR)
	return open(opts)
}

// NewInMemoryRecencyRepo is used by tests and the CLI dry runs.
func NewInMemoryRecencyRepo() (*RecencyRepo, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR)
	return open(opts)
}

func open(opts badger.Options) (*RecencyRepo, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open recency database: %w", err)
	}
	return &RecencyRepo{db: db}, nil
}

func entryKey(kind, day, text string) []byte {
	sum := sha1.Sum([]byte(text))
	return []byte(keyPrefix + kind + "/" + day + "/" + hex.EncodeToString(sum[:]))
}

func (r *RecencyRepo) Record(ctx context.Context, kind string, day time.Time, text string) error {
	key := entryKey(kind, day.Format(core.DayLayout), text)

	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return nil
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		val, err := json.Marshal(entry{Text: text, CreatedAt: time.Now()})
		if err != nil {
			return fmt.Errorf("failed to marshal recency entry: %w", err)
		}
		return txn.Set(key, val)
	})
}

func (r *RecencyRepo) Recent(ctx context.Context, kind string, since time.Time) ([]string, error) {
	prefix := []byte(keyPrefix + kind + "/")
	from := since.Format(core.DayLayout)

	type dated struct {
		day string
		entry
	}
	var found []dated

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 50
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		// keys sort by day, so seek straight to the window start
		for it.Seek(append(bytes.Clone(prefix), from...)); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			day, ok := dayFromKey(item.Key(), len(prefix))
			if !ok {
				continue
			}

			var e entry
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			}); err != nil {
				log.FromCtx(ctx).Warn().Err(err).Str("key", string(item.Key())).Msg("skipping unreadable recency entry")
				continue
			}
			found = append(found, dated{day: day, entry: e})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read recency: %w", err)
	}

	// within a day the key order is by digest, restore insertion order
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].day != found[j].day {
			return found[i].day < found[j].day
		}
		return found[i].CreatedAt.Before(found[j].CreatedAt)
	})

	seen := make(map[string]struct{}, len(found))
	texts := make([]string, 0, len(found))
	for _, d := range found {
		if _, dup := seen[d.Text]; dup {
			continue
		}
		seen[d.Text] = struct{}{}
		texts = append(texts, d.Text)
	}
	return texts, nil
}

func (r *RecencyRepo) Prune(ctx context.Context, before time.Time) (int, error) {
	cutoff := before.Format(core.DayLayout)
	var stale [][]byte

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().KeyCopy(nil)
			rest := strings.TrimPrefix(string(key), keyPrefix)
			parts := strings.SplitN(rest, "/", 3)
			if len(parts) != 3 {
				continue
			}
			if parts[1] < cutoff {
				stale = append(stale, key)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan recency: %w", err)
	}

	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range stale {
		if err := wb.Delete(key); err != nil {
			return 0, fmt.Errorf("failed to delete recency entry: %w", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, fmt.Errorf("failed to prune recency: %w", err)
	}
	return len(stale), nil
}

func (r *RecencyRepo) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// dayFromKey extracts and validates the day segment following the kind prefix.
func dayFromKey(key []byte, prefixLen int) (string, bool) {
	rest := string(key[prefixLen:])
	day, _, ok := strings.Cut(rest, "/")
	if !ok {
		return "", false
	}
	if _, err := time.Parse(core.DayLayout, day); err != nil {
		return "", false
	}
	return day, true
}
