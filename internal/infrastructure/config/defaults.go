package config

import "math"

// Default returns the built-in tuning. Files are decoded on top of it, so a
// tuning file only needs the keys it changes.
func Default() *Tuning {
	return &Tuning{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			Scale:        2,
			Framerate:    60,
		},
		Camera: CameraConfig{
			Offset:         Vec3{20, 20, 20},
			ViewportHeight: 30,
			FollowRate:     8,
		},
		Player: PlayerConfig{
			Speed:            3,
			MaxHealth:        100,
			HalfExtent:       0.5,
			SpotlightOffset:  Vec3{0, -0.8, 0},
			UpperLightOffset: Vec3{0, 0.5, 0},
		},
		Flashlight: FlashlightConfig{
			Angle:         0.35,
			Range:         6,
			Intensity:     500000,
			InnerGap:      0.1,
			FillAngle:     1,
			FillRange:     8,
			FillIntensity: 100000,
			FillHeight:    5,
		},
		Cursed: CursedConfig{
			SpeedMul:     Span{1.4, 3.0},
			InvertChance: 0.5,
			Skew:         Span{-1, 1},
			Swirl:        Span{0.15, 0.75},
			AimRotate:    Span{-math.Pi, math.Pi},
			Wobble:       Span{0.15, 0.9},
			WobbleHz:     Span{0.6, 3.5},
			Lag:          Span{0.04, 0.22},
			Jitter:       Span{0.3, 2.5},
			JitterChance: 0.08,
			AlphaMin:     0.01,
			AlphaMax:     0.35,
		},
		Mirror: MirrorConfig{
			SurfaceOffset:  0.15,
			RangeScale:     2,
			IntensityScale: 1.5,
		},
		Enemy: EnemyConfig{
			HalfExtent:      0.5,
			SpawnHeight:     1,
			LinearDamping:   5,
			ChaseGain:       20,
			MinSteerSq:      0.01,
			DrainPerSecond:  25,
			MinSize:         0.3,
			ReferenceHealth: 100,
		},
		Damage: DamageConfig{
			Radius:       6,
			MaxPerSecond: 25,
		},
		Feedback: FeedbackConfig{
			VignetteBase:   0.5,
			VignetteGain:   10,
			BrightnessBase: 6,
			BrightnessDrop: 5,
		},
		Spawner: SpawnerConfig{
			BasePopulation:  10,
			SecondsPerExtra: 5,
			HealthMin:       5,
			HealthBase:      10,
			Radius:          Span{12, 20},
			Speed:           Span{1, 4},
			Variants:        5,
			Tutorial: TutorialConfig{
				Position: Vec3{-10, 1, -10},
				Speed:    3,
				Health:   60,
				Variant:  5,
			},
		},
		Night: NightConfig{
			SunriseSeconds: 150,
		},
		Shop: ShopConfig{
			UpgradeCost:        45,
			TorchCost:          100,
			AngleStep:          0.1,
			MaxConeDegrees:     97,
			RangeStep:          1,
			MaxFlashlightRange: 10,
			TorchRange:         5,
			TorchOnSeconds:     2,
			TorchOffSeconds:    2,
			MaxTorchRange:      10,
			OnStep:             1,
			OffStep:            0.1,
			MinTorchOff:        0.3,
		},
	}
}

// DefaultLevel is the open yard used when no level file is given.
func DefaultLevel() *Level {
	return &Level{
		ID:            "yard",
		Name:          "The Yard",
		PlayerSpawn:   Vec3{0, 1, 0},
		TorchPosition: Vec3{0, 1, 0},
	}
}
