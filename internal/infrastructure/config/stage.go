package config

// Level is the root config for levels/<name>.yaml
type Level struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	PlayerSpawn   Vec3          `json:"playerSpawn" yaml:"playerSpawn"`
	TorchPosition Vec3          `json:"torchPosition" yaml:"torchPosition"`
	Mirrors       []MirrorSpawn `json:"mirrors" yaml:"mirrors"`
}

// MirrorSpawn places a static reflective box.
type MirrorSpawn struct {
	Position    Vec3    `json:"position" yaml:"position"`
	YawDeg      float64 `json:"yawDeg" yaml:"yawDeg"`
	HalfExtents Vec3    `json:"halfExtents" yaml:"halfExtents"`
	// Normal is the reflective face in the mirror's local frame.
	Normal Vec3 `json:"normal" yaml:"normal"`
}
