package ws

import (
	"encoding/json"
)

// MessageType discriminates the websocket messages the server and
// clients exchange.
type MessageType string

const (
	// MessageTypeMove carries a move submitted by the human player.
	MessageTypeMove MessageType = "move"
	// MessageTypeGameState carries a full game state snapshot. Sent
	// after every committed move, including the engine's replies.
	MessageTypeGameState MessageType = "gameState"
	// MessageTypeError carries a rejection or failure description.
	MessageTypeError MessageType = "error"
)

// Message is the websocket envelope.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}
