package config

import (
	"errors"

	"go.uber.org/fx"
)

var ErrMissingJWTSecret = errors.New("YS_JWT_SECRET_KEY must be set")

func NewProvider(customConfig *Config) fx.Option {
	if customConfig != nil {
		return fx.Provide(func() *Config {
			return customConfig
		})
	}

	return fx.Provide(func() (*Config, error) {
		cfg := &Config{}
		if err := LoadConfig(cfg); err != nil {
			return nil, err
		}
		if cfg.JWT.SecretKey == "" {
			return nil, ErrMissingJWTSecret
		}
		return cfg, nil
	})
}
