// Package config provides the configuration loader for lode.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the lodefile name searched for in the working directory
// and its ancestors.
const DefaultFilename = "lode.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	log      ports.Logger
}

// NewLoader creates a FileConfigLoader reading DefaultFilename.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{
		Filename: DefaultFilename,
		log:      log,
	}
}

// Load locates the lodefile starting at cwd and walking up towards the
// filesystem root, then reads it. The directory containing the lodefile
// becomes the default workdir when the file does not set one.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	path, err := l.findLodefile(cwd)
	if err != nil {
		return nil, err
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if cfg.Entry == "" {
		l.log.Warn("lodefile does not set an entry module")
	}

	if cfg.Workdir == "" {
		cfg.Workdir = filepath.Dir(path)
	} else if !filepath.IsAbs(cfg.Workdir) {
		cfg.Workdir = filepath.Join(filepath.Dir(path), cfg.Workdir)
	}

	return cfg, nil
}

func (l *FileConfigLoader) findLodefile(cwd string) (string, error) {
	currentDir := cwd
	for {
		path := filepath.Join(currentDir, l.Filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "searched cwd and all parents"), "cwd", cwd)
}

// Load reads a configuration file from the given path and returns a domain.Config.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no such file"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var lodefile Lodefile
	if err := yaml.Unmarshal(data, &lodefile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return &domain.Config{
		Entry:   lodefile.Entry,
		Workdir: lodefile.Workdir,
	}, nil
}
