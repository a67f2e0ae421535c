package config_fx

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"travelguide/internal/config"
	"travelguide/internal/logger"
	"travelguide/pkg/clock"
)

var Module = fx.Provide(
	provideConfig,
	provideLogger,
	provideClock)

func provideConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func provideLogger(cfg *config.Config) *logrus.Logger {
	gin.SetMode(cfg.GinMode)
	return logger.Setup(cfg)
}

func provideClock() clock.Clock {
	return &clock.RealClock{}
}
