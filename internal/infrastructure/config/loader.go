package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files that are neither YAML nor JSON.
var ErrUnknownFormat = errors.New("unknown config format")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning *Tuning
	Level  *Level
}

// Loader loads game configuration from YAML or JSON files using fs.FS
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadTuning loads tuning.yaml (or tuning.json) over the defaults.
func (l *Loader) LoadTuning() (*Tuning, error) {
	cfg := Default()
	if err := l.decodeFirst("tuning", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLevel loads levels/<name>.{yaml,yml,json}
func (l *Loader) LoadLevel(name string) (*Level, error) {
	cfg := DefaultLevel()
	cfg.ID = ""
	cfg.Mirrors = nil
	if err := l.decodeFirst(path.Join("levels", name), cfg); err != nil {
		return nil, err
	}
	if cfg.ID == "" {
		cfg.ID = name
	}
	return cfg, nil
}

// LoadAll loads the tuning and the named level
func (l *Loader) LoadAll(level string) (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	lvl, err := l.LoadLevel(level)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning: tuning,
		Level:  lvl,
	}, nil
}

func (l *Loader) decodeFirst(stem string, out any) error {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		name := stem + ext
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := Decode(name, data, out); err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("failed to read %s: %w", stem, fs.ErrNotExist)
}

// Decode unmarshals data into out, picking the codec from the file extension.
func Decode(name string, data []byte, out any) error {
	switch path.Ext(name) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	case ".json":
		return json.Unmarshal(data, out)
	default:
		return fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}
}
