package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/pkg/log"
)

type RecencyRepo struct {
	db *sql.DB
}

func NewRecencyRepo(db *sql.DB) *RecencyRepo {
	return &RecencyRepo{db: db}
}

func (r *RecencyRepo) Record(ctx context.Context, kind string, day time.Time, text string) error {
	// the UNIQUE constraint turns a same-day repeat into a no-op
	query := `INSERT OR IGNORE INTO recency (kind, day, text) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, kind, day.Format(core.DayLayout), text); err != nil {
		return fmt.Errorf("failed to insert recency entry: %w", err)
	}
	return nil
}

func (r *RecencyRepo) Recent(ctx context.Context, kind string, since time.Time) ([]string, error) {
	query := `SELECT day, text FROM recency WHERE kind = ? AND day >= ? ORDER BY day ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, kind, since.Format(core.DayLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query recency: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	var texts []string
	for rows.Next() {
		var day, text string
		if err := rows.Scan(&day, &text); err != nil {
			return nil, fmt.Errorf("failed to scan recency entry: %w", err)
		}
		if _, err := time.Parse(core.DayLayout, day); err != nil {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Str("kind", kind).Int("count", len(texts)).Msg("loaded recent texts")
	return texts, nil
}

func (r *RecencyRepo) Prune(ctx context.Context, before time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recency WHERE day < ?`, before.Format(core.DayLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to prune recency: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *RecencyRepo) Close() error {
	return r.db.Close()
}
