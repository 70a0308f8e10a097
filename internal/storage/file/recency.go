package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/pkg/log"
)

// Document is the legacy memory.json layout: kind -> ISO day -> texts.
type Document map[string]map[string][]string

// ReadDocument loads a memory.json file. A missing file is an empty document.
func ReadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, nil
		}
		return nil, fmt.Errorf("failed to read recency document: %w", err)
	}

	doc := Document{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse recency document: %w", err)
	}
	return doc, nil
}

// RecencyRepo stores the whole log as one JSON document. Every write is a
// read-modify-write of the file, serialised by a mutex within the process.
type RecencyRepo struct {
	path string
	mu   sync.Mutex
}

func NewRecencyRepo(path string) (*RecencyRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create recency directory: %w", err)
	}
	return &RecencyRepo{path: path}, nil
}

func (r *RecencyRepo) Record(ctx context.Context, kind string, day time.Time, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := ReadDocument(r.path)
	if err != nil {
		return err
	}

	key := day.Format(core.DayLayout)
	if doc[kind] == nil {
		doc[kind] = make(map[string][]string)
	}
	if slices.Contains(doc[kind][key], text) {
		return nil
	}
	doc[kind][key] = append(doc[kind][key], text)

	return r.save(doc)
}

func (r *RecencyRepo) Recent(ctx context.Context, kind string, since time.Time) ([]string, error) {
	r.mu.Lock()
	doc, err := ReadDocument(r.path)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	from := since.Format(core.DayLayout)
	days := make([]string, 0, len(doc[kind]))
	for key := range doc[kind] {
		if _, err := time.Parse(core.DayLayout, key); err != nil {
			log.FromCtx(ctx).Debug().Str("kind", kind).Str("day", key).Msg("ignoring malformed recency bucket")
			continue
		}
		if key >= from {
			days = append(days, key)
		}
	}
	sort.Strings(days)

	seen := make(map[string]struct{})
	var texts []string
	for _, key := range days {
		for _, text := range doc[kind][key] {
			if _, dup := seen[text]; dup {
				continue
			}
			seen[text] = struct{}{}
			texts = append(texts, text)
		}
	}
	return texts, nil
}

// Prune drops buckets dated before the cutoff. Malformed buckets are kept.
func (r *RecencyRepo) Prune(ctx context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := ReadDocument(r.path)
	if err != nil {
		return 0, err
	}

	cutoff := before.Format(core.DayLayout)
	removed := 0
	for kind, buckets := range doc {
		for key, texts := range buckets {
			if _, err := time.Parse(core.DayLayout, key); err != nil {
				continue
			}
			if key < cutoff {
				removed += len(texts)
				delete(buckets, key)
			}
		}
		doc[kind] = buckets
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, r.save(doc)
}

func (r *RecencyRepo) Close() error {
	return nil
}

func (r *RecencyRepo) save(doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recency document: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write recency document: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace recency document: %w", err)
	}
	return nil
}
