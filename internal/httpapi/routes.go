package httpapi

import (
	"net/http"

	"boardgame-relay/internal/relay"
	"boardgame-relay/internal/ws"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func SetupRoutes(r *relay.Relay, log *zap.Logger) http.Handler {
	router := chi.NewRouter()

	// Public routes
	router.Get("/healthz", Healthz)
	router.Get("/rooms/{roomID}", RoomMembers(r))
	router.Get("/ws", ws.Handler(r, log))
	return router
}
