package handler

import (
	"log/slog"
	"net/http"

	"github.com/vntrieu/zhuyin-practice/internal/words"
)

// Error body for an empty dataset.
const (
	NoWordsError   = "No words data available"
	NoWordsMessage = "word dataset is missing or empty"
)

// RandomWordSource draws one practice word; ok is false when no data is loaded.
type RandomWordSource interface {
	RandomEntry() (words.Entry, bool)
}

// WordResponse is the JSON body for GET /api/words/random.
type WordResponse struct {
	Word   string   `json:"word"`
	Zhuyin []string `json:"zhuyin"`
	Keys   []string `json:"keys"`
}

// NewWordResponse converts an entry, rendering absent arrays as empty ones.
func NewWordResponse(e words.Entry) WordResponse {
	resp := WordResponse{Word: e.Word, Zhuyin: e.Zhuyin, Keys: e.Keys}
	if resp.Zhuyin == nil {
		resp.Zhuyin = []string{}
	}
	if resp.Keys == nil {
		resp.Keys = []string{}
	}
	return resp
}

// WordHandler handles practice word requests.
type WordHandler struct {
	words  RandomWordSource
	logger *slog.Logger
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(src RandomWordSource, logger *slog.Logger) *WordHandler {
	return &WordHandler{words: src, logger: orDefault(logger)}
}

// Random handles GET /api/words/random
//
// @Summary      Random practice word
// @Description  Returns one word drawn uniformly from the loaded dataset, with its zhuyin symbols and input keys.
// @Tags         words
// @Produce      json
// @Success      200  {object}  WordResponse
// @Failure      500  {object}  errorResponse  "No words data available"
// @Router       /api/words/random [get]
func (h *WordHandler) Random(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.words.RandomEntry()
	if !ok {
		h.logger.Warn("words.no_data", slog.String("request_id", RequestIDFromRequest(r)))
		writeJSON(w, r, h.logger, http.StatusInternalServerError, errorResponse{
			Error:   NoWordsError,
			Message: NoWordsMessage,
		})
		return
	}

	writeJSON(w, r, h.logger, http.StatusOK, NewWordResponse(entry))
}
