package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vntrieu/zhuyin-practice/internal/httpapi/handler"
	"github.com/vntrieu/zhuyin-practice/internal/words"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRandomWordHandler(t *testing.T) {
	t.Run("single entry", func(t *testing.T) {
		svc := words.NewService(words.NewDataset([]words.Entry{
			{Word: "你", Zhuyin: []string{"ㄋ", "ㄧˇ"}, Keys: []string{"s", "u3"}},
		}), nil)
		h := handler.NewWordHandler(svc, discardLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/words/random", nil)
		w := httptest.NewRecorder()
		h.Random(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		var resp handler.WordResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "你", resp.Word)
		assert.Equal(t, []string{"ㄋ", "ㄧˇ"}, resp.Zhuyin)
		assert.Len(t, resp.Keys, len(resp.Zhuyin))
	})

	t.Run("field names and types", func(t *testing.T) {
		svc := words.NewService(words.NewDataset([]words.Entry{
			{Word: "他", Zhuyin: []string{"ㄊ", "ㄚ", ""}, Keys: []string{"w", "8", " "}},
		}), nil)
		h := handler.NewWordHandler(svc, discardLogger())

		w := httptest.NewRecorder()
		h.Random(w, httptest.NewRequest(http.MethodGet, "/api/words/random", nil))

		var body map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.IsType(t, "", body["word"])
		zhuyin, ok := body["zhuyin"].([]any)
		require.True(t, ok, "zhuyin should be an array")
		assert.Equal(t, "", zhuyin[2], "empty tone symbol should be preserved")
		assert.IsType(t, []any{}, body["keys"])
		assert.Len(t, body, 3)
	})

	t.Run("missing arrays render as empty", func(t *testing.T) {
		svc := words.NewService(words.NewDataset([]words.Entry{{Word: "空"}}), nil)
		h := handler.NewWordHandler(svc, discardLogger())

		w := httptest.NewRecorder()
		h.Random(w, httptest.NewRequest(http.MethodGet, "/api/words/random", nil))

		assert.Equal(t, `{"word":"空","zhuyin":[],"keys":[]}`+"\n", w.Body.String())
	})

	t.Run("empty dataset returns 500", func(t *testing.T) {
		svc := words.NewService(words.NewDataset(nil), nil)
		h := handler.NewWordHandler(svc, discardLogger())

		w := httptest.NewRecorder()
		h.Random(w, httptest.NewRequest(http.MethodGet, "/api/words/random", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, handler.NoWordsError, body["error"])
		assert.NotEmpty(t, body["message"])
	})

	t.Run("variety across draws", func(t *testing.T) {
		entries := make([]words.Entry, 25)
		for i := range entries {
			entries[i] = words.Entry{Word: string(rune('一' + i)), Zhuyin: []string{"ㄧ", ""}, Keys: []string{"u", " "}}
		}
		h := handler.NewWordHandler(words.NewService(words.NewDataset(entries), nil), discardLogger())

		seen := make(map[string]bool)
		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			h.Random(w, httptest.NewRequest(http.MethodGet, "/api/words/random", nil))
			var resp handler.WordResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			seen[resp.Word] = true
		}
		assert.GreaterOrEqual(t, len(seen), 2, "expected at least 2 distinct words in 10 draws")
	})
}
