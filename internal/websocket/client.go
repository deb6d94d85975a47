package websocket

import (
	"encoding/json"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"

	"github.com/vntrieu/zhuyin-practice/internal/httpapi/handler"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4 * 1024

	sendBuffer = 16
)

// Client is one practice session: every "next" request gets exactly one reply.
type Client struct {
	conn   *websocket.Conn
	words  handler.RandomWordSource
	logger *slog.Logger

	// Buffered channel of outbound messages. Only readPump sends and closes it.
	send chan ServerMessage
}

// readPump reads requests and queues one reply per request.
func (c *Client) readPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Warn("ws.read", slog.String("error", err.Error()))
			}
			return
		}

		reply := c.handle(message)
		select {
		case c.send <- reply:
		default:
			// Client is not reading its replies.
			c.logger.Warn("ws.send_buffer_full")
			return
		}
	}
}

// handle builds the reply for a single client message.
func (c *Client) handle(message []byte) ServerMessage {
	var msg ClientMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		return errorMessage("", "invalid message", "message must be a JSON object")
	}
	correlationID := truncateCorrelationID(msg.CorrelationID)

	if msg.Type != ClientMessageTypeNext {
		return errorMessage(correlationID, "unknown message type", "supported types: "+ClientMessageTypeNext)
	}

	entry, ok := c.words.RandomEntry()
	if !ok {
		return errorMessage(correlationID, handler.NoWordsError, handler.NoWordsMessage)
	}
	return ServerMessage{
		Type:          ServerTypeWord,
		CorrelationID: correlationID,
		Payload:       handler.NewWordResponse(entry),
	}
}

// truncateCorrelationID cuts id to at most MaxCorrelationIDLength bytes without splitting a rune.
func truncateCorrelationID(id string) string {
	if len(id) <= MaxCorrelationIDLength {
		return id
	}
	cut := MaxCorrelationIDLength
	for cut > 0 && !utf8.RuneStart(id[cut]) {
		cut--
	}
	return id[:cut]
}

func errorMessage(correlationID, errText, message string) ServerMessage {
	return ServerMessage{
		Type:          ServerTypeError,
		CorrelationID: correlationID,
		Payload:       ErrorPayload{Error: errText, Message: message},
	}
}

// writePump writes queued replies and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case out, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(out); err != nil {
				c.logger.Warn("ws.write", slog.String("error", err.Error()))
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
