package main

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/config"
	"github.com/cory-johannsen/armory/internal/game/inventory"
	"github.com/cory-johannsen/armory/internal/game/player"
	"github.com/cory-johannsen/armory/internal/hud"
	"github.com/cory-johannsen/armory/internal/observability"
	"github.com/cory-johannsen/armory/internal/scripting"
)

// App is the assembled simulation: a player holding its starting loadout and
// the HUD following it.
type App struct {
	Registry *inventory.Registry
	Scripts  *scripting.Manager
	Player   *player.Player
	HUD      *hud.HUD
	Tracer   trace.Tracer
}

func provideRegistry(cfg config.Config, logger *zap.Logger) (*inventory.Registry, error) {
	weapons, err := inventory.LoadWeapons(cfg.Content.WeaponsDir)
	if err != nil {
		return nil, fmt.Errorf("loading weapon definitions: %w", err)
	}
	reg, err := inventory.NewRegistryFrom(weapons)
	if err != nil {
		return nil, fmt.Errorf("registering weapons: %w", err)
	}
	all := reg.AllWeapons()
	ids := make([]string, 0, len(all))
	for _, w := range all {
		ids = append(ids, w.ID)
	}
	logger.Info("loaded weapon definitions",
		zap.String("dir", cfg.Content.WeaponsDir),
		zap.Strings("weapons", ids),
	)
	return reg, nil
}

func provideScripts(cfg config.Config, logger *zap.Logger) (*scripting.Manager, func()) {
	mgr := scripting.NewManager(cfg.Content.ScriptsDir, cfg.Scripting.InstructionLimit, logger)
	return mgr, mgr.Close
}

func provideStartingLoadout(cfg config.Config) inventory.StartingLoadout {
	grant := func(s config.SlotConfig) inventory.SlotGrant {
		return inventory.SlotGrant{WeaponID: s.Weapon, Reserve: s.Reserve, Loaded: s.Loaded}
	}
	return inventory.StartingLoadout{
		inventory.SlotPrimary1:  grant(cfg.Loadout.Primary1),
		inventory.SlotPrimary2:  grant(cfg.Loadout.Primary2),
		inventory.SlotSecondary: grant(cfg.Loadout.Secondary),
	}
}

func providePlayer(reg *inventory.Registry, src inventory.BehaviorSource, grants inventory.StartingLoadout, logger *zap.Logger) (*player.Player, error) {
	weapons, err := inventory.BuildLoadout(reg, src, grants, logger)
	if err != nil {
		return nil, err
	}
	p, err := player.NewWithLoadout(weapons, logger)
	if err != nil {
		return nil, fmt.Errorf("equipping starting loadout: %w", err)
	}
	for _, slot := range inventory.Slots {
		if w := p.Weapon(slot); w != nil {
			logger.Info("slot equipped",
				zap.String("slot", string(slot)),
				zap.String("weapon", w.Config().ID),
				zap.Int("clip", w.Clip()),
				zap.Int("reserve", w.Reserve()),
			)
		}
	}
	return p, nil
}

func provideHUD(p *player.Player, logger *zap.Logger) (*hud.HUD, func()) {
	h := hud.New(p, logger)
	return h, h.Close
}

func provideTracer() trace.Tracer {
	return observability.Tracer("driver")
}
