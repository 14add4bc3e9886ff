//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"github.com/tjjh89017/trafficlight-go/internal/config"
	"github.com/tjjh89017/trafficlight-go/internal/ctrl"
	"github.com/tjjh89017/trafficlight-go/internal/daemon"
	"github.com/tjjh89017/trafficlight-go/internal/light"
	"github.com/tjjh89017/trafficlight-go/internal/logger"
)

func setup() (*daemon.Daemon, error) {
	wire.Build(
		config.Load,
		logger.DefaultSet,
		provideTrafficLight,
		ctrl.DefaultSet,
		daemon.New,
	)

	return nil, nil
}

func provideTrafficLight(config *config.Config, logger *zerolog.Logger) *light.TrafficLight {
	return light.New(logger, light.WithSeed(config.Light.Seed))
}
