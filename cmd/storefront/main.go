package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/retailops/storefront/internal/config"
	"github.com/retailops/storefront/internal/shopapi"
	"github.com/retailops/storefront/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("load configuration")
	}

	log := newLogger(cfg)

	api, err := shopapi.New(shopapi.Config{
		BaseURL: cfg.ShopAPIURL,
		Timeout: cfg.APITimeout,
		Logger:  log.With().Str("component", "shopapi").Logger(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build shop API client")
	}

	_, router := web.New(web.Config{
		API:           api,
		Logger:        log.With().Str("component", "web").Logger(),
		SessionSecret: cfg.SessionSecret,
		Production:    cfg.IsProduction(),
	})

	log.Info().
		Str("addr", cfg.ListenAddr).
		Str("shop_api", cfg.ShopAPIURL).
		Msg("storefront listening")

	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	zerolog.DurationFieldUnit = time.Millisecond

	if cfg.IsProduction() {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
