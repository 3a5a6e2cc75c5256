// cmd/bridge/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/hwbridge/cc1101-bridge/internal/bridge"
	"github.com/hwbridge/cc1101-bridge/internal/config"
	"github.com/hwbridge/cc1101-bridge/internal/status"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: bridge <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	level, err := log.ParseLevel(cfg.Bridge.Log.Level)
	if err != nil {
		log.Fatalf("invalid log level %q: %v", cfg.Bridge.Log.Level, err)
	}
	log.SetLevel(level)

	// --------------------
	// Build transport + backend + loop
	// --------------------

	br, closeBridge, err := bridge.Build(cfg)
	if err != nil {
		log.Fatalf("bridge build failed: %v", err)
	}
	defer closeBridge()

	// --------------------
	// Run until signalled
	// --------------------

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := br.Run(ctx); err != nil {
		log.Fatalf("bridge loop failed: %v", err)
	}

	log.Info(status.Encode(br.Status()))
}
