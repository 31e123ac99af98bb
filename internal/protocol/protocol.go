package protocol

// Event names on the realtime channel. These are the wire contract with
// the web clients and must not change.
const (
	// client -> server
	EvtJoinRoom  = "join-room"
	EvtDiceRoll  = "dice-roll"
	EvtMoveToken = "move-token"

	// server -> client
	EvtPlayerJoined = "player-joined"
	EvtRoomFull     = "room-full"
	EvtTurnUpdated  = "turn-updated"
	EvtDiceRolled   = "dice-rolled"
	EvtTokenMoved   = "token-moved"
	EvtPlayerLeft   = "player-left"
)

// PlayerInfo is one entry of the player-joined payload. Order matters:
// join order is turn order.
type PlayerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Move is the move-token / token-moved payload.
type Move struct {
	Color  string `json:"color"`
	Index  int    `json:"index"`
	NewPos int    `json:"newPos"`
}

type ClientMessage struct {
	Type       string `json:"type"`
	RoomID     string `json:"roomId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	Player     string `json:"player,omitempty"`
	Value      int    `json:"value,omitempty"`
	MoveData   *Move  `json:"moveData,omitempty"`
}

type ServerMessage struct {
	Type    string       `json:"type"`
	Players []PlayerInfo `json:"players,omitempty"`
	Turn    *int         `json:"turn,omitempty"`
	Player  string       `json:"player,omitempty"`
	Value   int          `json:"value,omitempty"`
	Move    *Move        `json:"moveData,omitempty"`
	ConnID  string       `json:"connId,omitempty"`
	Error   string       `json:"error,omitempty"`
}
