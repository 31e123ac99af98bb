package main

import (
	"context"
	"fmt"
	"net/http"

	"boardgame-relay/internal/config"
	"boardgame-relay/internal/httpapi"
	"boardgame-relay/internal/registry"
	"boardgame-relay/internal/relay"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg := config.Load()

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(level)
	log, err := logCfg.Build()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()
	r := relay.New(ctx, registry.New(), log)

	// Build the router *with* the relay injected
	handler := httpapi.SetupRoutes(r, log)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("relay listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
