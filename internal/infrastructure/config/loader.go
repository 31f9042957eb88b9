package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads configuration from JSON/YAML files using the fs.FS
// interface so configs can come from disk or an embedded filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a config loader rooted at a filesystem path.
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a config loader from an fs.FS.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadTuning loads tuning.json.
func (l *Loader) LoadTuning() (*Tuning, error) {
	data, err := fs.ReadFile(l.fsys, "tuning.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning.json: %w", err)
	}

	var cfg Tuning
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning.json: %w", err)
	}
	applyTuningDefaults(&cfg)

	return &cfg, nil
}

// LoadStage loads a stage YAML file by name from stages/.
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// applyTuningDefaults fills in values that must never be zero.
func applyTuningDefaults(cfg *Tuning) {
	if cfg.Display.Framerate <= 0 {
		cfg.Display.Framerate = 60
	}
	if cfg.Jump.WallPressCompensation == 0 {
		cfg.Jump.WallPressCompensation = 1.0
	}
	if cfg.Jump.MaxJumps <= 0 {
		cfg.Jump.MaxJumps = 1
	}
	if cfg.Wall.StickMinRays <= 0 {
		cfg.Wall.StickMinRays = 2
	}
	if cfg.Slope.MinAngleDeg == 0 {
		cfg.Slope.MinAngleDeg = 1
	}
	if cfg.Slope.MaxAngleDeg == 0 {
		cfg.Slope.MaxAngleDeg = 60
	}
	if cfg.Probe.WallRayOffsets == [3]float64{} {
		cfg.Probe.WallRayOffsets = [3]float64{0.2, 0.5, 0.8}
	}
}
