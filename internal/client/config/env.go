package config

import "github.com/caarlos0/env/v11"

const EnvPrefix = "STOREFRONT_"

func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
