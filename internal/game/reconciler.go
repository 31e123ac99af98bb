package game

import "boardgame-relay/internal/protocol"

// State is a client's local mirror of the shared game state, rebuilt
// purely from relay broadcasts. The sender applies its own echo like
// everyone else; there are no optimistic writes.
type State struct {
	Players []protocol.PlayerInfo
	Turn    int
	Dice    int // 0 = unset
	Tokens  map[Color][]int

	// turnHolder pins the turn to a connection id so a departure earlier
	// in the order cannot silently shift whose turn it is.
	turnHolder string
}

func NewState() *State {
	tokens := make(map[Color][]int, len(Colors))
	for _, c := range Colors {
		tokens[c] = []int{Home, Home, Home, Home}
	}
	return &State{Tokens: tokens}
}

// Apply folds one broadcast into the mirror. Unknown message types are
// ignored.
func (s *State) Apply(msg protocol.ServerMessage) {
	switch msg.Type {
	case protocol.EvtPlayerJoined:
		// Wholesale replace, so replaying the same list is idempotent.
		s.Players = append([]protocol.PlayerInfo(nil), msg.Players...)
		if len(s.Players) == 1 {
			s.Turn = 0
		}
		s.pinTurn()

	case protocol.EvtTurnUpdated:
		if msg.Turn != nil {
			s.Turn = *msg.Turn
			s.pinTurn()
		}

	case protocol.EvtDiceRolled:
		s.Dice = msg.Value

	case protocol.EvtTokenMoved:
		if msg.Move == nil {
			return
		}
		if tokens, ok := s.Tokens[Color(msg.Move.Color)]; ok {
			if msg.Move.Index >= 0 && msg.Move.Index < len(tokens) {
				tokens[msg.Move.Index] = msg.Move.NewPos
			}
		}
		if n := len(s.Players); n > 0 {
			s.Turn = (s.Turn + 1) % n
		}
		s.Dice = 0
		s.pinTurn()

	case protocol.EvtPlayerLeft:
		kept := make([]protocol.PlayerInfo, 0, len(s.Players))
		for _, p := range s.Players {
			if p.ID == msg.ConnID {
				continue
			}
			kept = append(kept, p)
		}
		s.Players = kept
		s.rederiveTurn()
	}
}

func (s *State) pinTurn() {
	if s.Turn >= 0 && s.Turn < len(s.Players) {
		s.turnHolder = s.Players[s.Turn].ID
	}
}

// rederiveTurn maps the turn pointer back to the pinned player after a
// departure. If the holder itself left, the pointer stays put and now
// names the next player in order.
func (s *State) rederiveTurn() {
	if len(s.Players) == 0 {
		s.Turn = 0
		s.turnHolder = ""
		return
	}
	for i, p := range s.Players {
		if p.ID == s.turnHolder {
			s.Turn = i
			return
		}
	}
	s.Turn %= len(s.Players)
	s.pinTurn()
}

// IsTurnOf reports whether the given connection holds the turn.
func (s *State) IsTurnOf(connID string) bool {
	return s.Turn < len(s.Players) && s.Players[s.Turn].ID == connID
}

// ColorOf returns the color the relay assigned to the connection, empty
// until the first player-joined echo arrives.
func (s *State) ColorOf(connID string) Color {
	for _, p := range s.Players {
		if p.ID == connID {
			return Color(p.Color)
		}
	}
	return ""
}
