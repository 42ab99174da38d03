package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dafrizzy/digits/internal/config"
	"github.com/dafrizzy/digits/internal/httpserver"
	"github.com/dafrizzy/digits/internal/mapsdb"
	"github.com/dafrizzy/digits/internal/solver"
	"github.com/dafrizzy/digits/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}
	if err := mapsdb.EnsureSchema(db); err != nil {
		log.Fatal().Err(err).Msg("ensure clue maps schema")
	}
	if cfg.BuildMaps {
		if err := mapsdb.NewBuilder(db).Build(context.Background(), cfg.MinDigits, cfg.MaxDigits); err != nil {
			log.Fatal().Err(err).Msg("build clue maps")
		}
	}

	srv := httpserver.New(
		store.NewMemoryStore(),
		db,
		solver.New(mapsdb.NewStore(db)),
		httpserver.Options{
			SessionSecret: cfg.SessionSecret,
			CookieName:    cfg.CookieName,
			Secure:        cfg.Production,
			MinDigits:     cfg.MinDigits,
			MaxDigits:     cfg.MaxDigits,
		},
	)
	log.Info().Str("addr", cfg.Addr).Msg("starting digits server")
	if err := srv.Start(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
