//go:build wireinject

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/config"
	"github.com/cory-johannsen/armory/internal/game/inventory"
	"github.com/cory-johannsen/armory/internal/scripting"
)

func initializeApp(cfg config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		provideRegistry,
		provideScripts,
		wire.Bind(new(inventory.BehaviorSource), new(*scripting.Manager)),
		provideStartingLoadout,
		providePlayer,
		provideHUD,
		provideTracer,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
