// Package progress holds the run-wide state that survives between nights:
// kill totals, currency, and the flashlight and torch upgrades.
package progress

import "fmt"

// Flashlight is the player's upgradable cone light.
type Flashlight struct {
	Angle     float64 `json:"angle"`
	Range     float64 `json:"range"`
	Intensity float64 `json:"intensity"`
}

// Torch is the optional stationary light bought in the shop.
type Torch struct {
	Range      float64 `json:"range"`
	OnSeconds  float64 `json:"onSeconds"`
	OffSeconds float64 `json:"offSeconds"`
}

// GameState is the progression shared by every night of a run.
type GameState struct {
	Night           int        `json:"night"`
	KillsThisNight  int        `json:"killsThisNight"`
	SurvivedSeconds float64    `json:"survivedSeconds"`
	TotalKills      int        `json:"totalKills"`
	Spent           int        `json:"spent"`
	Flashlight      Flashlight `json:"flashlight"`
	Torch           *Torch     `json:"torch,omitempty"`
}

// New starts a run on night 1.
func New(flashlight Flashlight) *GameState {
	return &GameState{
		Night:      1,
		Flashlight: flashlight,
	}
}

// Clone returns a deep copy, so a recording can keep the state a night
// started from.
func (g *GameState) Clone() *GameState {
	c := *g
	if g.Torch != nil {
		t := *g.Torch
		c.Torch = &t
	}
	return &c
}

// Currency is what the shop can still spend.
func (g *GameState) Currency() int {
	return g.TotalKills - g.Spent
}

// RecordKill counts a kill for this night and the run.
func (g *GameState) RecordKill() {
	g.KillsThisNight++
	g.TotalKills++
}

// Advance adds dt to the night clock.
func (g *GameState) Advance(dt float64) {
	g.SurvivedSeconds += dt
}

// NextNight moves to the following night and resets its counters.
func (g *GameState) NextNight() {
	g.Night++
	g.KillsThisNight = 0
	g.SurvivedSeconds = 0
}

// IsTutorial reports whether the lone first-night enemy should appear.
func (g *GameState) IsTutorial() bool {
	return g.Night == 1 && g.KillsThisNight == 0
}

// Clock formats seconds as mm:ss.
func Clock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
