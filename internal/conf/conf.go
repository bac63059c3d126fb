package conf

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultInterval is the advisory refresh interval in seconds.
const DefaultInterval = 30

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Interval: DefaultInterval,
	}
}

// Load reads a TOML config file on top of the defaults. An empty path or a
// missing file is not an error; a file that exists but cannot be parsed is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
