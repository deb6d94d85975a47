package handler

import (
	"log/slog"
	"net/http"
)

// wordCounter is the part of the word service the health check needs.
type wordCounter interface {
	Count() int
}

// healthResponse is the JSON body for GET /health.
type healthResponse struct {
	Status      string `json:"status"`
	WordsLoaded int    `json:"words_loaded"`
}

// HealthHandler serves the health check.
type HealthHandler struct {
	words  wordCounter
	logger *slog.Logger
}

// NewHealthHandler creates a HealthHandler reporting the size of the loaded dataset.
func NewHealthHandler(words wordCounter, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{words: words, logger: orDefault(logger)}
}

// Health handles GET /health.
//
// @Summary      Health check
// @Description  Liveness check with the number of loaded practice words. Always 200, even with an empty dataset.
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.logger, http.StatusOK, healthResponse{
		Status:      "ok",
		WordsLoaded: h.words.Count(),
	})
}
