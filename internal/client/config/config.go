package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the storefront CLI.
type Config struct {
	ServerEndpointAddr string        `env:"SERVER_ADDRESS"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
	Token              string        `env:"TOKEN"`
}

// Flags lists every flag the config layer consumes, so that command parsing
// can skip them.
var Flags = []string{"-a", "-r", "-token", "-c", "-config", "--config"}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.Token = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
