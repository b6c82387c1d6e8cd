package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// MongoCfg is mongodb connection configuration
type MongoCfg struct {
	URI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017/idurar-erp-crm"`
	Database string `env:"MONGO_DB" envDefault:"idurar-erp-crm"`
}

// ServerCfg is http server configuration
type ServerCfg struct {
	Port int `env:"PORT" envDefault:"8000"`
}

// Config is application configuration
type Config struct {
	MongoCfg  MongoCfg
	ServerCfg ServerCfg
}

// Build parses configuration from environment variables
func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}
	return cfg, nil
}
