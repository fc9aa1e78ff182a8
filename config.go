package vtcore

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration for a vtcore-backed shell session:
// grid size and the handful of modes a host may want pinned at startup.
type Config struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	ScrollOnOutput bool `yaml:"scroll_on_output"`
}

// DefaultConfig matches the size a freshly-opened 80x24 terminal uses.
func DefaultConfig() Config {
	return Config{Rows: 24, Cols: 80, ScrollOnOutput: true}
}

// ConfigDir returns the vtcore configuration directory (~/.vtcore/).
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".vtcore")
	}
	return filepath.Join(home, ".vtcore")
}

// LoadConfig reads config.yaml from path, returning DefaultConfig if the
// file does not exist.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
