package protocol

import (
	"encoding/json"
	"fmt"
)

// Client-to-server message types.
const (
	TypeJoin   = "join"
	TypeMove   = "move"
	TypeCombat = "combat"
	TypeChat   = "chat"
)

// Server-to-client message types.
const (
	TypeJoined       = "joined"
	TypePlayerJoined = "playerJoined"
	TypePlayerMove   = "playerMove"
	TypeCombatEvent  = "combatEvent"
	TypePlayerLeft   = "playerLeft"
	TypeError        = "error"
)

// Error codes reported to clients. The connection stays open after any of
// these; the offending message is simply dropped.
const (
	CodeBadRequest  = "bad_request"
	CodeNotJoined   = "not_joined"
	CodeConflict    = "conflict"
	CodeUnsupported = "unsupported"
)

// Inbound is the envelope for client-originated frames. Optional fields are
// pointers where absence must be distinguished from a zero value.
type Inbound struct {
	Type    string   `json:"type"`
	Player  string   `json:"player,omitempty"`
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
	Event   string   `json:"event,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Decode parses a raw frame into an Inbound envelope. A frame that is not a
// JSON object, or whose fields have the wrong types, is a decode failure.
func Decode(data []byte) (*Inbound, error) {
	var msg Inbound
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return &msg, nil
}

// Joined is the reply sent to a client after a successful join.
type Joined struct {
	Type        string `json:"type"`
	PlayerID    string `json:"playerId"`
	PlayerCount int    `json:"playerCount"`
}

// PlayerJoined announces a new player to everyone else.
type PlayerJoined struct {
	Type        string `json:"type"`
	Player      string `json:"player"`
	PlayerCount int    `json:"playerCount"`
}

// PlayerMove relays a position update to all peers of the mover.
type PlayerMove struct {
	Type     string  `json:"type"`
	PlayerID string  `json:"playerId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// CombatEvent relays a combat notification to all peers of the originator.
type CombatEvent struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
	Event    string `json:"event"`
}

// Chat relays a chat line to every connected player, sender included.
type Chat struct {
	Type    string `json:"type"`
	Player  string `json:"player"`
	Message string `json:"message"`
}

// PlayerLeft announces a departure to all remaining players.
type PlayerLeft struct {
	Type        string `json:"type"`
	Player      string `json:"player"`
	PlayerCount int    `json:"playerCount"`
}

// ErrorMessage reports a rejected frame back to its sender only.
type ErrorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewJoined(playerID string, count int) Joined {
	return Joined{Type: TypeJoined, PlayerID: playerID, PlayerCount: count}
}

func NewPlayerJoined(player string, count int) PlayerJoined {
	return PlayerJoined{Type: TypePlayerJoined, Player: player, PlayerCount: count}
}

func NewPlayerMove(playerID string, x, y float64) PlayerMove {
	return PlayerMove{Type: TypePlayerMove, PlayerID: playerID, X: x, Y: y}
}

func NewCombatEvent(playerID, event string) CombatEvent {
	return CombatEvent{Type: TypeCombatEvent, PlayerID: playerID, Event: event}
}

func NewChat(player, message string) Chat {
	return Chat{Type: TypeChat, Player: player, Message: message}
}

func NewPlayerLeft(player string, count int) PlayerLeft {
	return PlayerLeft{Type: TypePlayerLeft, Player: player, PlayerCount: count}
}

func NewError(code, message string) ErrorMessage {
	return ErrorMessage{Type: TypeError, Code: code, Message: message}
}
