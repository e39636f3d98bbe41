package config_fx

import (
	"go.uber.org/fx"
	"triptalk/internal/config"
)

var Module = fx.Provide(provideConfig)

func provideConfig() (*config.Config, error) {
	return config.Load()
}
