// Package config loads gateway settings from an optional graphgate.yaml
// file and GRAPHGATE_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/teamkeel/graphgate/runtime/actions"
)

const EnvPrefix = "GRAPHGATE"

type Config struct {
	Pagination PaginationConfig `mapstructure:"pagination"`
	Backend    BackendConfig    `mapstructure:"backend"`
}

type PaginationConfig struct {
	DefaultSize  int `mapstructure:"defaultSize"`
	MaxSize      int `mapstructure:"maxSize"`
	WindowRadius int `mapstructure:"windowRadius"`
}

type BackendConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Options returns the paging bounds used when resolving connections.
func (c *Config) Options() actions.Options {
	return actions.Options{
		DefaultSize:  c.Pagination.DefaultSize,
		MaxSize:      c.Pagination.MaxSize,
		WindowRadius: c.Pagination.WindowRadius,
	}
}

// Load reads the config file at path, if not empty, and applies environment
// overrides such as GRAPHGATE_PAGINATION_MAXSIZE.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := actions.DefaultOptions()
	v.SetDefault("pagination.defaultSize", defaults.DefaultSize)
	v.SetDefault("pagination.maxSize", defaults.MaxSize)
	v.SetDefault("pagination.windowRadius", defaults.WindowRadius)
	v.SetDefault("backend.url", "")
	v.SetDefault("backend.timeout", 10*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) Validate() error {
	p := c.Pagination
	switch {
	case p.DefaultSize <= 0:
		return fmt.Errorf("pagination.defaultSize must be positive, got %d", p.DefaultSize)
	case p.MaxSize < p.DefaultSize:
		return fmt.Errorf("pagination.maxSize (%d) cannot be smaller than pagination.defaultSize (%d)", p.MaxSize, p.DefaultSize)
	case p.WindowRadius < 0:
		return fmt.Errorf("pagination.windowRadius cannot be negative, got %d", p.WindowRadius)
	case c.Backend.Timeout < 0:
		return fmt.Errorf("backend.timeout cannot be negative, got %s", c.Backend.Timeout)
	}
	return nil
}
