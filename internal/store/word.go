package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vntrieu/zhuyin-practice/internal/words"
)

// WordStore reads the practice dataset from the words table. It never writes.
type WordStore struct {
	pool *pgxpool.Pool
}

// NewWordStore creates a new WordStore.
func NewWordStore(pool *pgxpool.Pool) *WordStore {
	return &WordStore{pool: pool}
}

// Describe names the source in load diagnostics.
func (s *WordStore) Describe() string {
	return "postgres:words"
}

// ReadEntries returns every row ordered by position.
// Query failures wrap words.ErrResourceMissing.
func (s *WordStore) ReadEntries(ctx context.Context) ([]words.Entry, error) {
	rows, err := s.pool.Query(ctx, `SELECT word, zhuyin, keys FROM words ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: query words: %v", words.ErrResourceMissing, err)
	}
	defer rows.Close()

	var entries []words.Entry
	for rows.Next() {
		var e words.Entry
		if err := rows.Scan(&e.Word, &e.Zhuyin, &e.Keys); err != nil {
			return nil, fmt.Errorf("%w: scan word: %v", words.ErrResourceMalformed, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read words: %v", words.ErrResourceMissing, err)
	}
	return entries, nil
}
