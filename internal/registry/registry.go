package registry

import "errors"

var ErrRoomFull = errors.New("room full")

// Palette is the fixed color order. A player's color is the palette entry
// at their join position and never changes for the connection lifetime.
// Colors are not reused after a disconnect.
var Palette = []string{"red", "blue", "green", "yellow"}

const Capacity = 4

type Player struct {
	ID    string
	Name  string
	Color string
}

// Registry owns the room table: room id -> ordered member list, where
// join order is turn order. It is not safe for concurrent use; the relay
// loop is its single caller, which is what makes capacity checks and
// color assignment race-free.
type Registry struct {
	rooms map[string][]Player
}

func New() *Registry {
	return &Registry{rooms: make(map[string][]Player)}
}

// Join appends the connection to the room, creating the room on first
// join. The returned slice is the full member list after the join and is
// a copy the caller may keep.
func (r *Registry) Join(roomID, connID, name string) ([]Player, error) {
	members := r.rooms[roomID]
	if len(members) >= Capacity {
		return nil, ErrRoomFull
	}
	members = append(members, Player{ID: connID, Name: name, Color: Palette[len(members)]})
	r.rooms[roomID] = members
	return append([]Player(nil), members...), nil
}

// Leave removes the connection from every room it belongs to. Rooms that
// become empty stay in the table for the process lifetime. The result
// maps each changed room to its remaining members.
func (r *Registry) Leave(connID string) map[string][]Player {
	changed := make(map[string][]Player)
	for roomID, members := range r.rooms {
		kept := make([]Player, 0, len(members))
		removed := false
		for _, p := range members {
			if p.ID == connID {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		if removed {
			r.rooms[roomID] = kept
			changed[roomID] = append([]Player(nil), kept...)
		}
	}
	return changed
}

// Members returns a copy of the room's member list, nil if the room was
// never created.
func (r *Registry) Members(roomID string) []Player {
	members, ok := r.rooms[roomID]
	if !ok {
		return nil
	}
	return append([]Player(nil), members...)
}

// Rooms returns the ids of every room ever created, empty ones included.
func (r *Registry) Rooms() []string {
	ids := make([]string, 0, len(r.rooms))
	for id := range r.rooms {
		ids = append(ids, id)
	}
	return ids
}
