package relay

import (
	"context"

	"boardgame-relay/internal/protocol"
	"boardgame-relay/internal/registry"

	"go.uber.org/zap"
)

type Msg interface{ isRelayMsg() }

// Connect registers a live connection and the outbox it wants broadcasts
// delivered to. It happens before any join; a connection without rooms
// receives nothing.
type Connect struct {
	ConnID string
	Outbox chan protocol.ServerMessage
}

func (Connect) isRelayMsg() {}

// Disconnect removes the connection from every room it joined and
// announces player-left to the remaining members.
type Disconnect struct{ ConnID string }

func (Disconnect) isRelayMsg() {}

type JoinRoom struct {
	ConnID     string
	RoomID     string
	PlayerName string
}

func (JoinRoom) isRelayMsg() {}

type DiceRoll struct {
	RoomID string
	Player string
	Value  int
}

func (DiceRoll) isRelayMsg() {}

type MoveToken struct {
	RoomID string
	Move   protocol.Move
}

func (MoveToken) isRelayMsg() {}

type GetView struct {
	RoomID string
	Reply  chan View
}

func (GetView) isRelayMsg() {}

type Shutdown struct{}

func (Shutdown) isRelayMsg() {}

// View reflects relay internals without data races. Used by tests and
// the debug endpoint.
type View struct {
	Members  []registry.Player
	NumConns int
}

// Relay is a dumb forwarder: it keeps the registry bookkeeping and
// rebroadcasts client events to a room verbatim. Dice legality and move
// legality are the clients' problem; the relay trusts the sender.
type Relay struct {
	inbox  chan Msg
	reg    *registry.Registry
	conns  map[string]chan protocol.ServerMessage
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func New(parent context.Context, reg *registry.Registry, log *zap.Logger) *Relay {
	ctx, cancel := context.WithCancel(parent)

	r := &Relay{
		inbox:  make(chan Msg, 64), // small buffer
		reg:    reg,
		conns:  make(map[string]chan protocol.ServerMessage),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}

	go r.loop()
	return r
}

// Inbox is where the transport layer (and tests) send messages.
func (r *Relay) Inbox() chan<- Msg { return r.inbox }

func (r *Relay) loop() {
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Connect:
				r.conns[msg.ConnID] = msg.Outbox

			case Disconnect:
				if out, ok := r.conns[msg.ConnID]; ok {
					close(out)
					delete(r.conns, msg.ConnID)
				}
				for roomID, remaining := range r.reg.Leave(msg.ConnID) {
					r.broadcast(remaining, protocol.ServerMessage{
						Type:   protocol.EvtPlayerLeft,
						ConnID: msg.ConnID,
					})
					r.log.Info("player left",
						zap.String("room", roomID),
						zap.String("conn", msg.ConnID),
						zap.Int("remaining", len(remaining)))
				}

			case JoinRoom:
				members, err := r.reg.Join(msg.RoomID, msg.ConnID, msg.PlayerName)
				if err != nil {
					// Only the rejected connection hears about it.
					r.send(msg.ConnID, protocol.ServerMessage{Type: protocol.EvtRoomFull})
					r.log.Info("join rejected",
						zap.String("room", msg.RoomID),
						zap.String("conn", msg.ConnID),
						zap.Error(err))
					break
				}
				r.broadcast(members, protocol.ServerMessage{
					Type:    protocol.EvtPlayerJoined,
					Players: toInfos(members),
				})
				if len(members) == 1 {
					// First join into an empty room resets the turn pointer.
					turn := 0
					r.broadcast(members, protocol.ServerMessage{
						Type: protocol.EvtTurnUpdated,
						Turn: &turn,
					})
				}
				r.log.Info("player joined",
					zap.String("room", msg.RoomID),
					zap.String("conn", msg.ConnID),
					zap.String("color", members[len(members)-1].Color))

			case DiceRoll:
				r.broadcast(r.reg.Members(msg.RoomID), protocol.ServerMessage{
					Type:   protocol.EvtDiceRolled,
					Player: msg.Player,
					Value:  msg.Value,
				})

			case MoveToken:
				move := msg.Move
				r.broadcast(r.reg.Members(msg.RoomID), protocol.ServerMessage{
					Type: protocol.EvtTokenMoved,
					Move: &move,
				})

			case GetView:
				msg.Reply <- View{
					Members:  r.reg.Members(msg.RoomID),
					NumConns: len(r.conns),
				}

			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

func (r *Relay) shutdown() {
	for id, out := range r.conns {
		close(out)
		delete(r.conns, id)
	}
	r.cancel()
}

// broadcast delivers to every member that still has a live outbox.
func (r *Relay) broadcast(members []registry.Player, msg protocol.ServerMessage) {
	for _, p := range members {
		r.send(p.ID, msg)
	}
}

func (r *Relay) send(connID string, msg protocol.ServerMessage) {
	out, ok := r.conns[connID]
	if !ok {
		return
	}
	select {
	case out <- msg:
		// ok
	default:
		// Connection is slow/full - drop its outbox. Registry cleanup
		// happens when the transport notices and sends Disconnect.
		close(out)
		delete(r.conns, connID)
		r.log.Warn("dropped slow connection", zap.String("conn", connID))
	}
}

func toInfos(members []registry.Player) []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, len(members))
	for i, p := range members {
		infos[i] = protocol.PlayerInfo{ID: p.ID, Name: p.Name, Color: p.Color}
	}
	return infos
}
