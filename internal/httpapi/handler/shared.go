package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// contextKey type for request context keys (avoids collisions with other packages).
type contextKey string

// RequestIDContextKey is the context key for the request ID set by the RequestID middleware.
const RequestIDContextKey contextKey = "request_id"

// RequestIDFromRequest returns the request ID from the request context, or empty.
func RequestIDFromRequest(r *http.Request) string {
	if id, ok := r.Context().Value(RequestIDContextKey).(string); ok {
		return id
	}
	return ""
}

// errorResponse is the JSON body for error responses.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.String("request_id", RequestIDFromRequest(r)), slog.String("error", err.Error()))
	}
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
