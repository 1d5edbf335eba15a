package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/younwookim/nightlight/internal/application/replay"
	"github.com/younwookim/nightlight/internal/application/scene/night"
	"github.com/younwookim/nightlight/internal/domain/progress"
	"github.com/younwookim/nightlight/internal/infrastructure/config"
)

// Outcome is the printable result of a replayed night.
type Outcome struct {
	night.Outcome
	File  string
	Level string
	Seed  int64
}

func (o Outcome) String() string {
	end := "recording ended"
	switch {
	case o.Defeated:
		end = "defeated"
	case o.Sunrise:
		end = "sunrise"
	}
	return fmt.Sprintf("%s: level=%s seed=%d frames=%d night=%d time=%s kills=%d health=%.0f%% (%s)",
		o.File, o.Level, o.Seed, o.Frames, o.Snapshot.Night,
		progress.Clock(o.Snapshot.SurvivedSeconds), o.Kills, o.Snapshot.HealthRatio*100, end)
}

// runReplay loads a recording and plays it back without a window on the
// loaded level.
func runReplay(filename string, cfg *config.GameConfig, log zerolog.Logger) (Outcome, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return Outcome{}, err
	}
	if data.Level != cfg.Level.ID {
		log.Warn().Str("recorded", data.Level).Str("loaded", cfg.Level.ID).Msg("level mismatch")
	}

	res, err := night.Replay(*data, cfg.Tuning, cfg.Level, log)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Outcome: res, File: filename, Level: data.Level, Seed: data.Seed}, nil
}
