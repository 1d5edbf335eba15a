package config

type PlayerConfig struct {
	Speed      float64 `json:"speed" yaml:"speed"`
	MaxHealth  float64 `json:"maxHealth" yaml:"maxHealth"`
	HalfExtent float64 `json:"halfExtent" yaml:"halfExtent"`
	// SpotlightOffset is the primary spotlight position relative to the body.
	SpotlightOffset  Vec3 `json:"spotlightOffset" yaml:"spotlightOffset"`
	UpperLightOffset Vec3 `json:"upperLightOffset" yaml:"upperLightOffset"`
}

// FlashlightConfig is the starting flashlight and the fixed fill light.
type FlashlightConfig struct {
	Angle         float64 `json:"angle" yaml:"angle"`
	Range         float64 `json:"range" yaml:"range"`
	Intensity     float64 `json:"intensity" yaml:"intensity"`
	InnerGap      float64 `json:"innerGap" yaml:"innerGap"`
	FillAngle     float64 `json:"fillAngle" yaml:"fillAngle"`
	FillRange     float64 `json:"fillRange" yaml:"fillRange"`
	FillIntensity float64 `json:"fillIntensity" yaml:"fillIntensity"`
	FillHeight    float64 `json:"fillHeight" yaml:"fillHeight"`
}

type EnemyConfig struct {
	HalfExtent      float64 `json:"halfExtent" yaml:"halfExtent"`
	SpawnHeight     float64 `json:"spawnHeight" yaml:"spawnHeight"`
	LinearDamping   float64 `json:"linearDamping" yaml:"linearDamping"`
	ChaseGain       float64 `json:"chaseGain" yaml:"chaseGain"`
	MinSteerSq      float64 `json:"minSteerSq" yaml:"minSteerSq"`
	DrainPerSecond  float64 `json:"drainPerSecond" yaml:"drainPerSecond"`
	MinSize         float64 `json:"minSize" yaml:"minSize"`
	ReferenceHealth float64 `json:"referenceHealth" yaml:"referenceHealth"`
}

type SpawnerConfig struct {
	BasePopulation  int            `json:"basePopulation" yaml:"basePopulation"`
	SecondsPerExtra float64        `json:"secondsPerExtra" yaml:"secondsPerExtra"`
	HealthMin       float64        `json:"healthMin" yaml:"healthMin"`
	HealthBase      float64        `json:"healthBase" yaml:"healthBase"`
	Radius          Span           `json:"radius" yaml:"radius"`
	Speed           Span           `json:"speed" yaml:"speed"`
	Variants        int            `json:"variants" yaml:"variants"`
	Tutorial        TutorialConfig `json:"tutorial" yaml:"tutorial"`
}

// TutorialConfig is the lone enemy of the first night.
type TutorialConfig struct {
	Position Vec3    `json:"position" yaml:"position"`
	Speed    float64 `json:"speed" yaml:"speed"`
	Health   float64 `json:"health" yaml:"health"`
	Variant  int     `json:"variant" yaml:"variant"`
}

// ShopConfig prices and caps the between-night upgrades.
type ShopConfig struct {
	UpgradeCost        int     `json:"upgradeCost" yaml:"upgradeCost"`
	TorchCost          int     `json:"torchCost" yaml:"torchCost"`
	AngleStep          float64 `json:"angleStep" yaml:"angleStep"`
	MaxConeDegrees     float64 `json:"maxConeDegrees" yaml:"maxConeDegrees"`
	RangeStep          float64 `json:"rangeStep" yaml:"rangeStep"`
	MaxFlashlightRange float64 `json:"maxFlashlightRange" yaml:"maxFlashlightRange"`
	TorchRange         float64 `json:"torchRange" yaml:"torchRange"`
	TorchOnSeconds     float64 `json:"torchOnSeconds" yaml:"torchOnSeconds"`
	TorchOffSeconds    float64 `json:"torchOffSeconds" yaml:"torchOffSeconds"`
	MaxTorchRange      float64 `json:"maxTorchRange" yaml:"maxTorchRange"`
	OnStep             float64 `json:"onStep" yaml:"onStep"`
	OffStep            float64 `json:"offStep" yaml:"offStep"`
	MinTorchOff        float64 `json:"minTorchOff" yaml:"minTorchOff"`
}
