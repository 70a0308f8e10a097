package words

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed fallback.csv
var fallback []byte

// Rand is the subset of math/rand/v2 the sampler needs.
type Rand interface {
	IntN(n int) int
}

// List is a vocabulary list read from the first column of a CSV file.
type List struct {
	words []string
}

// Load reads path, or the embedded list when path is empty or missing.
func Load(path string) (*List, error) {
	if path == "" {
		return Fallback(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Fallback(), nil
		}
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func Fallback() *List {
	l, err := Parse(bytes.NewReader(fallback))
	if err != nil {
		panic("embedded word list is invalid: " + err.Error())
	}
	return l
}

// Parse keeps the first non-empty column of every row. Duplicates are dropped.
func Parse(r io.Reader) (*List, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	seen := make(map[string]struct{})
	var words []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read word list: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		w := strings.TrimSpace(record[0])
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return &List{words: words}, nil
}

func (l *List) Len() int {
	return len(l.words)
}

// Sample returns n distinct words, or nil when the list is shorter than n.
func (l *List) Sample(r Rand, n int) []string {
	if n <= 0 || len(l.words) < n {
		return nil
	}
	pool := make([]string, len(l.words))
	copy(pool, l.words)
	for i := 0; i < n; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// WriteFallback copies the embedded list to path so it can be edited.
// An existing file is left alone.
func WriteFallback(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, fallback, 0644); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	return nil
}
