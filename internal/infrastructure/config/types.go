package config

import "github.com/go-gl/mathgl/mgl64"

// Tuning is the root config for tuning.yaml
type Tuning struct {
	Display    DisplayConfig    `json:"display" yaml:"display"`
	Camera     CameraConfig     `json:"camera" yaml:"camera"`
	Player     PlayerConfig     `json:"player" yaml:"player"`
	Flashlight FlashlightConfig `json:"flashlight" yaml:"flashlight"`
	Cursed     CursedConfig     `json:"cursed" yaml:"cursed"`
	Mirror     MirrorConfig     `json:"mirror" yaml:"mirror"`
	Enemy      EnemyConfig      `json:"enemy" yaml:"enemy"`
	Damage     DamageConfig     `json:"damage" yaml:"damage"`
	Feedback   FeedbackConfig   `json:"feedback" yaml:"feedback"`
	Spawner    SpawnerConfig    `json:"spawner" yaml:"spawner"`
	Night      NightConfig      `json:"night" yaml:"night"`
	Shop       ShopConfig       `json:"shop" yaml:"shop"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

// CameraConfig describes the isometric orthographic follow camera.
type CameraConfig struct {
	Offset         Vec3    `json:"offset" yaml:"offset"`
	ViewportHeight float64 `json:"viewportHeight" yaml:"viewportHeight"` // world units
	FollowRate     float64 `json:"followRate" yaml:"followRate"`
}

// Span is a half-open [Min, Max) range for random draws.
type Span struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// CursedConfig holds the ranges re-rolled on every cursed toggle.
type CursedConfig struct {
	SpeedMul     Span    `json:"speedMul" yaml:"speedMul"`
	InvertChance float64 `json:"invertChance" yaml:"invertChance"`
	Skew         Span    `json:"skew" yaml:"skew"`
	Swirl        Span    `json:"swirl" yaml:"swirl"`
	AimRotate    Span    `json:"aimRotate" yaml:"aimRotate"`
	Wobble       Span    `json:"wobble" yaml:"wobble"`
	WobbleHz     Span    `json:"wobbleHz" yaml:"wobbleHz"`
	Lag          Span    `json:"lag" yaml:"lag"`
	Jitter       Span    `json:"jitter" yaml:"jitter"`
	JitterChance float64 `json:"jitterChance" yaml:"jitterChance"`
	// Smoothing alpha bounds for the lagged aim.
	AlphaMin float64 `json:"alphaMin" yaml:"alphaMin"`
	AlphaMax float64 `json:"alphaMax" yaml:"alphaMax"`
}

type MirrorConfig struct {
	SurfaceOffset  float64 `json:"surfaceOffset" yaml:"surfaceOffset"`
	RangeScale     float64 `json:"rangeScale" yaml:"rangeScale"`
	IntensityScale float64 `json:"intensityScale" yaml:"intensityScale"`
}

type DamageConfig struct {
	Radius       float64 `json:"radius" yaml:"radius"`
	MaxPerSecond float64 `json:"maxPerSecond" yaml:"maxPerSecond"`
}

// FeedbackConfig shapes the vignette and brightness curves.
type FeedbackConfig struct {
	VignetteBase   float64 `json:"vignetteBase" yaml:"vignetteBase"`
	VignetteGain   float64 `json:"vignetteGain" yaml:"vignetteGain"`
	BrightnessBase float64 `json:"brightnessBase" yaml:"brightnessBase"`
	BrightnessDrop float64 `json:"brightnessDrop" yaml:"brightnessDrop"`
}

type NightConfig struct {
	// SunriseSeconds ends the night; zero disables sunrise.
	SunriseSeconds float64 `json:"sunriseSeconds" yaml:"sunriseSeconds"`
}

// Vec3 is a config-friendly [x, y, z] triple.
type Vec3 [3]float64

// Vec returns v as an mgl64 vector.
func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}
