package inventory

import (
	"fmt"

	"go.uber.org/zap"
)

// SlotGrant describes the weapon a player starts with in one slot.
type SlotGrant struct {
	// WeaponID references a registered WeaponConfig.
	WeaponID string
	// Reserve is the starting reserve ammunition, clamped to the config maximum.
	Reserve int
	// Loaded starts the weapon with a full clip instead of an empty one.
	Loaded bool
}

// StartingLoadout maps slots to the weapons granted at spawn. Slots absent
// from the map start empty.
type StartingLoadout map[Slot]SlotGrant

// BuildLoadout instantiates one Weapon per grant, resolving configs through
// reg and behaviors through src.
//
// Precondition: reg and src must not be nil.
// Postcondition: every returned weapon's category is accepted by its slot;
// returns an error on unknown slot, unknown weapon ID, category mismatch or
// behavior construction failure.
func BuildLoadout(reg *Registry, src BehaviorSource, grants StartingLoadout, logger *zap.Logger) (map[Slot]*Weapon, error) {
	for slot := range grants {
		if !slot.IsValid() {
			return nil, fmt.Errorf("inventory: BuildLoadout: unknown slot %q", slot)
		}
	}
	out := make(map[Slot]*Weapon, len(grants))
	for _, slot := range Slots {
		grant, ok := grants[slot]
		if !ok || grant.WeaponID == "" {
			continue
		}
		cfg, ok := reg.Weapon(grant.WeaponID)
		if !ok {
			return nil, fmt.Errorf("inventory: BuildLoadout: slot %s: unknown weapon %q", slot, grant.WeaponID)
		}
		if !slot.Accepts(cfg.Category) {
			return nil, fmt.Errorf("inventory: BuildLoadout: slot %s does not accept %s weapon %q", slot, cfg.Category, cfg.ID)
		}
		b, err := src.BehaviorFor(cfg)
		if err != nil {
			return nil, fmt.Errorf("inventory: BuildLoadout: slot %s: behavior for %q: %w", slot, cfg.ID, err)
		}
		opts := []Option{WithBehavior(b), WithReserve(grant.Reserve), WithLogger(logger)}
		if grant.Loaded {
			opts = append(opts, WithFullClip())
		}
		out[slot] = NewWeapon(cfg, opts...)
	}
	return out, nil
}
