package websocket

// ClientMessage is the envelope for messages from client to server.
// Type: "next"
type ClientMessage struct {
	Type          string `json:"type"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// ServerMessage is the envelope for messages from server to client.
// Type: "word" | "error"
type ServerMessage struct {
	Type          string `json:"type"`
	CorrelationID string `json:"correlation_id,omitempty"`
	Payload       any    `json:"payload,omitempty"`
}

// ErrorPayload is the payload of an "error" message.
type ErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client message types.
const (
	ClientMessageTypeNext = "next"
)

// Server message types.
const (
	ServerTypeWord  = "word"
	ServerTypeError = "error"
)

// MaxCorrelationIDLength limits the echoed correlation_id, in bytes.
const MaxCorrelationIDLength = 64
