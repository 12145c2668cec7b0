//go:build ebiten

package main

import (
	"errors"
	"flag"

	"vidslide/internal/app"
	"vidslide/internal/feed"
	"vidslide/internal/puzzle"
	_ "vidslide/internal/sims/briansbrain"
	_ "vidslide/internal/sims/elementary"
	_ "vidslide/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	envErr := app.LoadEnv()

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := app.NewLogger(cfg.Debug)
	if envErr != nil {
		log.WithError(envErr).Warn("ignoring .env")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	src, err := feed.Open(cfg.Source, cfg.FeedOptions(log))
	if err != nil {
		log.WithError(err).WithField("source", cfg.Source).Fatal("open feed")
	}

	pg, err := puzzle.NewGame(cfg.Rows, src, cfg.PuzzleOptions(log)...)
	if err != nil {
		log.WithError(err).Fatal("create puzzle")
	}

	game := app.New(pg, src, log)
	w, h, _ := src.FrameSize()

	ebiten.SetWindowTitle("vidslide - " + src.Name())
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("run game")
	}
}
