package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"boardgame-relay/internal/relay"

	"github.com/go-chi/chi/v5"
)

type roomView struct {
	RoomID  string       `json:"roomId"`
	Players []playerView `json:"players"`
}

type playerView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// RoomMembers exposes a room's member list for debugging. A room that was
// never joined reads as empty, same as one everybody left.
func RoomMembers(r *relay.Relay) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		roomID := chi.URLParam(req, "roomID")

		reply := make(chan relay.View, 1)
		r.Inbox() <- relay.GetView{RoomID: roomID, Reply: reply}

		select {
		case view := <-reply:
			out := roomView{RoomID: roomID, Players: []playerView{}}
			for _, p := range view.Members {
				out.Players = append(out.Players, playerView{ID: p.ID, Name: p.Name, Color: p.Color})
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(out)
		case <-time.After(2 * time.Second):
			http.Error(w, "relay not responding", http.StatusServiceUnavailable)
		}
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
