package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	// client -> server
	MessageTypeSelect   MessageType = "select"
	MessageTypeDeselect MessageType = "deselect"
	MessageTypeMove     MessageType = "move"
	MessageTypePromote  MessageType = "promote"
	MessageTypeNewGame  MessageType = "newGame"

	// server -> client
	MessageTypeEvent     MessageType = "event"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ErrorPayload is sent with MessageTypeError.
type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a Message of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
