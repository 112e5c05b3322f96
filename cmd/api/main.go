package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/ewilliams-labs/moodreel/internal/app"
	"github.com/ewilliams-labs/moodreel/internal/config"
	"github.com/ewilliams-labs/moodreel/internal/logging"
)

func main() {
	// 1. Configuration (file, .env and environment)
	cfg, err := config.Load(os.Getenv("MOODREEL_CONFIG"))
	if err != nil {
		logging.Init("info", true)
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Init(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Adapters and core service
	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire application")
	}
	defer a.Close()

	// 3. Serve until interrupted
	if err := a.Serve(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
		stop()
		a.Close()
		os.Exit(1)
	}
}
