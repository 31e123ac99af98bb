package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"boardgame-relay/internal/protocol"
	"boardgame-relay/internal/relay"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnknownEvent = errors.New("unknown event")
	ErrBadPayload   = errors.New("bad payload")
)

func Handler(r *relay.Relay, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		conn, err := websocket.Accept(w, req, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		connID := uuid.NewString()
		out := make(chan protocol.ServerMessage, 8)

		r.Inbox() <- relay.Connect{ConnID: connID, Outbox: out}
		defer func() { r.Inbox() <- relay.Disconnect{ConnID: connID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(req.Context())
		defer writeCancel()
		go func() {
			for msg := range out {
				payload, err := json.Marshal(msg)
				if err != nil {
					continue
				}
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop. A bad frame answers only this connection and never
		// reaches the relay; the loop keeps going.
		for {
			_, data, err := conn.Read(req.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (relay.Disconnect in defer):
				return
			}

			var cm protocol.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(req.Context(), conn, "bad json")
				continue
			}

			msg, err := toRelayMsg(connID, cm)
			if err != nil {
				log.Debug("rejected client event",
					zap.String("conn", connID),
					zap.String("type", cm.Type),
					zap.Error(err))
				writeError(req.Context(), conn, err.Error())
				continue
			}

			r.Inbox() <- msg
		}
	}
}

// toRelayMsg is the validation boundary: shape problems come back as
// tagged errors instead of propagating into the relay loop.
func toRelayMsg(connID string, m protocol.ClientMessage) (relay.Msg, error) {
	if m.RoomID == "" {
		return nil, ErrBadPayload
	}

	switch m.Type {
	case protocol.EvtJoinRoom:
		return relay.JoinRoom{ConnID: connID, RoomID: m.RoomID, PlayerName: m.PlayerName}, nil
	case protocol.EvtDiceRoll:
		return relay.DiceRoll{RoomID: m.RoomID, Player: m.Player, Value: m.Value}, nil
	case protocol.EvtMoveToken:
		if m.MoveData == nil {
			return nil, ErrBadPayload
		}
		return relay.MoveToken{RoomID: m.RoomID, Move: *m.MoveData}, nil
	default:
		return nil, ErrUnknownEvent
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, msg string) {
	payload, _ := json.Marshal(protocol.ServerMessage{Type: "error", Error: msg})
	_ = conn.Write(ctx, websocket.MessageText, payload)
}
