package ws

import (
	"errors"
	"testing"

	"boardgame-relay/internal/protocol"
	"boardgame-relay/internal/relay"
)

func TestToRelayMsg(t *testing.T) {
	cases := []struct {
		name    string
		in      protocol.ClientMessage
		want    relay.Msg
		wantErr error
	}{
		{
			name: "join room",
			in:   protocol.ClientMessage{Type: protocol.EvtJoinRoom, RoomID: "r1", PlayerName: "Alice"},
			want: relay.JoinRoom{ConnID: "c1", RoomID: "r1", PlayerName: "Alice"},
		},
		{
			name: "dice roll",
			in:   protocol.ClientMessage{Type: protocol.EvtDiceRoll, RoomID: "r1", Player: "c1", Value: 4},
			want: relay.DiceRoll{RoomID: "r1", Player: "c1", Value: 4},
		},
		{
			name: "move token",
			in: protocol.ClientMessage{
				Type:     protocol.EvtMoveToken,
				RoomID:   "r1",
				MoveData: &protocol.Move{Color: "red", Index: 0, NewPos: 3},
			},
			want: relay.MoveToken{RoomID: "r1", Move: protocol.Move{Color: "red", Index: 0, NewPos: 3}},
		},
		{
			name:    "missing room id",
			in:      protocol.ClientMessage{Type: protocol.EvtJoinRoom, PlayerName: "Alice"},
			wantErr: ErrBadPayload,
		},
		{
			name:    "move without move data",
			in:      protocol.ClientMessage{Type: protocol.EvtMoveToken, RoomID: "r1"},
			wantErr: ErrBadPayload,
		},
		{
			name:    "unknown type",
			in:      protocol.ClientMessage{Type: "start-game", RoomID: "r1"},
			wantErr: ErrUnknownEvent,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := toRelayMsg("c1", tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}
