package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"dunn-delivery/config"
	"dunn-delivery/console"
	"dunn-delivery/services"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	setupLogger(cfg.Log)

	calc := services.NewCalculator(services.DefaultCatalog(), cfg.Pricing, cfg.Delivery)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := console.New(cfg, calc, os.Stdin, os.Stdout, log.Logger)
	if err := session.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, console.ErrInputClosed) {
			log.Info().Err(err).Msg("session ended early")
			fmt.Fprintln(os.Stdout)
			return
		}
		log.Error().Err(err).Msg("session failed")
		stop()
		os.Exit(1)
	}
}

func setupLogger(cfg config.LogConfig) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Logger = log.With().Caller().Logger()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		log.Warn().Err(err).Str("level", cfg.Level).Msg("unknown LOG_LEVEL, using warn")
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
}
