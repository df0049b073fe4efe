package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"boothdesk/config"
	"boothdesk/di"
	"boothdesk/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := di.InitializeCLI()
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
