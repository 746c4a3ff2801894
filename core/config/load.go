package config

import (
	"os"
	"path/filepath"
)

// Load loads a configuration file. A directory is taken to hold a
// config.yaml.
func Load(path string) (*Configuration, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ConfigurationName)
	}

	configContents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(configContents)
}
