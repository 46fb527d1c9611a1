package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	defaultPort      = "3000"
	defaultDatabase  = "animals"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Config agrupa la configuración del proceso, leída del entorno.
// MONGO_URI es el único valor obligatorio: sin store no hay servicio,
// y el arranque aborta antes de abrir el puerto HTTP.
type Config struct {
	Port      string `koanf:"port"`
	MongoURI  string `koanf:"mongo_uri" validate:"required"`
	MongoDB   string `koanf:"mongo_db"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

// Load lee PORT, MONGO_URI, MONGO_DB, LOG_LEVEL y LOG_FORMAT del entorno,
// aplica defaults a los opcionales y valida los obligatorios.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = defaultPort
	}
	if strings.TrimSpace(cfg.MongoDB) == "" {
		cfg.MongoDB = defaultDatabase
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if strings.TrimSpace(cfg.LogFormat) == "" {
		cfg.LogFormat = defaultLogFormat
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
