package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boardgame-relay/internal/protocol"
	"boardgame-relay/internal/registry"
	"boardgame-relay/internal/relay"

	"go.uber.org/zap"
)

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}
}

func TestRoomMembers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := relay.New(ctx, registry.New(), zap.NewNop())
	handler := SetupRoutes(r, zap.NewNop())

	out := make(chan protocol.ServerMessage, 8)
	r.Inbox() <- relay.Connect{ConnID: "c1", Outbox: out}
	r.Inbox() <- relay.JoinRoom{ConnID: "c1", RoomID: "r1", PlayerName: "Alice"}

	// wait for the join echo so the request below observes the join
	select {
	case <-out:
	case <-time.After(time.Second):
		t.Fatalf("no join broadcast")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/r1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	var view struct {
		RoomID  string `json:"roomId"`
		Players []struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Color string `json:"color"`
		} `json:"players"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if view.RoomID != "r1" || len(view.Players) != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Players[0].Name != "Alice" || view.Players[0].Color != "red" {
		t.Fatalf("unexpected player: %+v", view.Players[0])
	}
}

func TestRoomMembers_UnknownRoomReadsEmpty(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := relay.New(ctx, registry.New(), zap.NewNop())
	handler := SetupRoutes(r, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/nope", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	var view struct {
		Players []any `json:"players"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(view.Players) != 0 {
		t.Fatalf("want empty players, got %+v", view.Players)
	}
}
