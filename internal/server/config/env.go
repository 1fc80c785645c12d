package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name declared in Config's env tags.
const EnvPrefix = "STOREFRONT_"

// parseEnv overlays STOREFRONT_* environment variables. Unset variables keep
// the current value. A malformed value (e.g. a bad duration) panics.
func parseEnv(config *Config) {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
