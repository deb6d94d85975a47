package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vntrieu/zhuyin-practice/internal/words"
)

func TestWordStore_ReadEntries(t *testing.T) {
	pool := SetupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	rows := []words.Entry{
		{Word: "山", Zhuyin: []string{"ㄕ", "ㄢ", ""}, Keys: []string{"g", "0", " "}},
		{Word: "你", Zhuyin: []string{"ㄋ", "ㄧˇ"}, Keys: []string{"s", "u3"}},
	}
	// Insert out of order to check ordering by position.
	for i := len(rows) - 1; i >= 0; i-- {
		_, err := pool.Exec(ctx, `INSERT INTO words (position, word, zhuyin, keys) VALUES ($1, $2, $3, $4)`,
			i, rows[i].Word, rows[i].Zhuyin, rows[i].Keys)
		require.NoError(t, err)
	}

	got, err := NewWordStore(pool).ReadEntries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "山", got[0].Word)
	assert.Equal(t, "你", got[1].Word)
	assert.Equal(t, []string{"ㄕ", "ㄢ", ""}, got[0].Zhuyin, "empty tone symbol should be preserved")

	ds := words.Load(ctx, NewWordStore(pool), slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, 2, ds.Len())
}

func TestWordStore_EmptyTable(t *testing.T) {
	pool := SetupTestDB(t)
	defer pool.Close()

	got, err := NewWordStore(pool).ReadEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWordStore_ClosedPoolIsMissing(t *testing.T) {
	pool := SetupTestDB(t)
	pool.Close()

	_, err := NewWordStore(pool).ReadEntries(context.Background())
	assert.ErrorIs(t, err, words.ErrResourceMissing)
}
