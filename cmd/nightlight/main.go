package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/nightlight/internal/application/game"
	"github.com/younwookim/nightlight/internal/application/scene/night"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
	"github.com/younwookim/nightlight/internal/infrastructure/logging"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record night.json or night.msgpack)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and print the outcome")
	seedFlag := flag.Int64("seed", 0, "RNG seed for every night (0 = time based)")
	levelFlag := flag.String("level", "yard", "Level to play")
	configFlag := flag.String("config", "", "Config directory (default: embedded configs)")
	debugFlag := flag.Bool("debug", false, "Debug logging")
	flag.Parse()

	log := logging.Console(*debugFlag)

	cfg, err := loadConfig(*configFlag, *levelFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if *replayFlag != "" {
		out, err := runReplay(*replayFlag, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Str("file", *replayFlag).Msg("replay failed")
		}
		fmt.Fprintln(os.Stdout, out)
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	run := night.NewRun(cfg.Tuning, cfg.Level, seed, log)
	run.RecordPath = *recordFlag
	if *seedFlag != 0 {
		run.Seed = func() int64 { return seed }
	}

	d := cfg.Tuning.Display
	g := game.New(run.Start(), d.ScreenWidth, d.ScreenHeight, log)
	g.SetDT(1.0 / float64(d.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle("Nightlight")
	ebiten.SetTPS(d.Framerate)

	log.Info().Str("level", cfg.Level.ID).Int64("seed", seed).Msg("starting")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game stopped")
	}
}

// loadConfig reads configs from dir, or from the embedded files when dir is
// empty.
func loadConfig(dir, level string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll(level)
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll(level)
}
