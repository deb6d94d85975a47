package websocket

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vntrieu/zhuyin-practice/internal/httpapi/handler"
)

// WSHandler upgrades practice stream connections.
type WSHandler struct {
	words    handler.RandomWordSource
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a WSHandler. allowedOrigins follows the CORS list:
// "*" accepts any origin; requests without an Origin header are always accepted.
func NewWSHandler(words handler.RandomWordSource, allowedOrigins []string, logger *slog.Logger) *WSHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WSHandler{
		words:  words,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		for _, a := range allowed {
			if a == "*" || strings.EqualFold(a, origin) || strings.EqualFold(a, u.Scheme+"://"+u.Host) {
				return true
			}
		}
		return false
	}
}

// HandlePractice handles GET /ws/words.
func (h *WSHandler) HandlePractice(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error response.
		h.logger.Warn("ws.upgrade", slog.String("request_id", handler.RequestIDFromRequest(r)), slog.String("error", err.Error()))
		return
	}

	client := &Client{
		conn:   conn,
		words:  h.words,
		logger: h.logger.With(slog.String("request_id", handler.RequestIDFromRequest(r))),
		send:   make(chan ServerMessage, sendBuffer),
	}

	go client.writePump()
	go client.readPump()
}
