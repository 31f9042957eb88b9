package config

// StageConfig is the root config for stage YAML files.
type StageConfig struct {
	ID          string                 `yaml:"id"`
	Name        string                 `yaml:"name"`
	Size        StageSizeConfig        `yaml:"size"`
	PlayerSpawn PositionConfig         `yaml:"playerSpawn"`
	Layers      LayersConfig           `yaml:"layers"`
	TileMapping map[string]TileMapping `yaml:"tileMapping"`
	Platforms   []PlatformConfig       `yaml:"platforms"`
	Checkpoints []PositionConfig       `yaml:"checkpoints"`
}

type StageSizeConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tileSize"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type LayersConfig struct {
	Collision []string `yaml:"collision"`
}

// TileMapping binds a collision-layer character to a tile type.
// Recognized types: solid, slopeUpRight, slopeUpLeft, buffer, hazard.
type TileMapping struct {
	Type string `yaml:"type"`
}

type PlatformConfig struct {
	Width     float64          `yaml:"width"`
	Height    float64          `yaml:"height"`
	Speed     float64          `yaml:"speed"`
	Waypoints []PositionConfig `yaml:"waypoints"`
}
