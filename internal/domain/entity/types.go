package entity

import "strings"

// EntityID is a unique identifier for an entity
type EntityID uint32

// LightFlags records which kinds of light currently illuminate an enemy.
// Each kind is tracked independently so losing one never clears the other.
type LightFlags uint8

const (
	LitSpotlight LightFlags = 1 << iota
	LitTorch

	LitNone LightFlags = 0
)

// Has reports whether every bit of k is set.
func (f LightFlags) Has(k LightFlags) bool {
	return k != 0 && f&k == k
}

// Any reports whether the enemy is lit by anything.
func (f LightFlags) Any() bool {
	return f != 0
}

// Set adds k and reports whether it was newly added.
func (f *LightFlags) Set(k LightFlags) bool {
	if f.Has(k) {
		return false
	}
	*f |= k
	return true
}

// Clear removes k and reports whether it was present.
func (f *LightFlags) Clear(k LightFlags) bool {
	if !f.Has(k) {
		return false
	}
	*f &^= k
	return true
}

// Update sets or clears k and reports whether anything changed.
func (f *LightFlags) Update(k LightFlags, lit bool) bool {
	if lit {
		return f.Set(k)
	}
	return f.Clear(k)
}

func (f LightFlags) String() string {
	if f == LitNone {
		return "none"
	}
	var parts []string
	if f.Has(LitSpotlight) {
		parts = append(parts, "spotlight")
	}
	if f.Has(LitTorch) {
		parts = append(parts, "torch")
	}
	return strings.Join(parts, "|")
}

// Visual is the rendered look of an entity.
type Visual struct {
	Scale   float64
	Variant int
}

// Lamp is an auxiliary light attached to an entity for feedback only.
type Lamp struct {
	Visible bool
}
