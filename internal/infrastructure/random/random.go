// Package random provides the injectable random source shared by the
// simulation. Every draw goes through a single Source so a seed plus the
// recorded inputs reproduce a night exactly.
package random

import "math/rand"

// Source is the random service consumed by the simulation systems.
type Source interface {
	// Float64Range returns a uniform value in [min, max).
	Float64Range(min, max float64) float64
	// IntRange returns a uniform integer in [min, max).
	IntRange(min, max int) int
	// Bool returns true with probability p.
	Bool(p float64) bool
}

// Rand is a Source backed by math/rand.
type Rand struct {
	r    *rand.Rand
	seed int64
}

// New creates a seeded Source.
func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the source was created with.
func (g *Rand) Seed() int64 {
	return g.seed
}

func (g *Rand) Float64Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + g.r.Float64()*(max-min)
}

func (g *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.r.Intn(max-min)
}

func (g *Rand) Bool(p float64) bool {
	return g.r.Float64() < p
}

// Shuffle permutes n elements using swap.
func (g *Rand) Shuffle(n int, swap func(i, j int)) {
	g.r.Shuffle(n, swap)
}
