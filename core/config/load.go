package config

import (
	_ "embed"
	"errors"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// Load reads the configuration from path, which may name either the
// configuration directory or the config file itself. A missing file
// yields the default configuration, not an error.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	if filepath.Base(path) != ConfigurationName {
		path = filepath.Join(path, ConfigurationName)
	}

	contents, err := afero.ReadFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Default(), nil
	case err != nil:
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Initialize writes a commented starter configuration to dir unless
// one already exists, then loads it.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	path := filepath.Join(dir, ConfigurationName)

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Printf("%s already exists, leaving as-is", path)
	} else {
		if err := afero.WriteFile(fsys, path, defaultConfigData, 0o644); err != nil {
			return nil, err
		}
		logger.Printf("created %s", path)
	}

	return Load(fsys, path)
}
