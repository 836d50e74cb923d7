// Package config provides the configuration loader for depcollect.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/depcollect/internal/core/domain"
	"go.trai.ch/depcollect/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a new Loader looking for depcollect.yaml.
func NewLoader() *Loader {
	return &Loader{Filename: Filename}
}

// Load reads the configuration from the given working directory.
// A missing file is not an error and yields domain.DefaultConfig.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// Load reads a configuration file from the given path.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	cfg, err := file.toDomain()
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (f *File) toDomain() (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if cmd := strings.TrimSpace(f.Probe.Command); cmd != "" {
		cfg.Probe.Command = cmd
	} else if f.Probe.Command != "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "probe command must not be blank"), "field", "probe.command")
	}
	cfg.Probe.Args = f.Probe.Args
	cfg.Probe.CleanEnv = f.Probe.CleanEnv
	cfg.Probe.Env = f.Probe.Env

	level, ok := domain.ParseLogLevel(f.Log.Level)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown log level"), "field", "log.level")
		return nil, zerr.With(err, "value", f.Log.Level)
	}
	cfg.LogLevel = level

	return cfg, nil
}
