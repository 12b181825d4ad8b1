package player_test

import (
	"github.com/cory-johannsen/armory/internal/game/inventory"
	"github.com/cory-johannsen/armory/internal/game/player"
)

func primaryConfig() *inventory.WeaponConfig {
	return &inventory.WeaponConfig{
		ID:              "rifle-ar",
		Name:            "Assault Rifle",
		Category:        inventory.CategoryPrimary,
		ClipCapacity:    30,
		FireRate:        8,
		MaxReserveAmmo:  90,
		DamagePerBullet: 10,
		FireType:        inventory.FireTypeAutomatic,
	}
}

func secondaryConfig() *inventory.WeaponConfig {
	return &inventory.WeaponConfig{
		ID:              "pistol-9mm",
		Name:            "9mm Pistol",
		Category:        inventory.CategorySecondary,
		ClipCapacity:    12,
		FireRate:        4,
		MaxReserveAmmo:  48,
		DamagePerBullet: 12,
		FireType:        inventory.FireTypeSingle,
	}
}

// gate is a behavior whose switch permission the test controls and which
// logs hook calls into a shared journal.
type gate struct {
	name      string
	canSwitch bool
	journal   *[]string
	fired     int
}

func (g *gate) Equip(*inventory.Weapon)   { *g.journal = append(*g.journal, "equip:"+g.name) }
func (g *gate) Unequip(*inventory.Weapon) { *g.journal = append(*g.journal, "unequip:"+g.name) }
func (g *gate) FireBullet(*inventory.Weapon) {
	g.fired++
}
func (g *gate) CanSwitchWeapons(*inventory.Weapon) bool { return g.canSwitch }

type fixture struct {
	journal []string
}

// weapon builds a loaded weapon whose hooks write to f.journal.
func (f *fixture) weapon(name string, cfg *inventory.WeaponConfig) (*inventory.Weapon, *gate) {
	g := &gate{name: name, canSwitch: true, journal: &f.journal}
	return inventory.NewWeapon(cfg, inventory.WithID(name), inventory.WithFullClip(), inventory.WithBehavior(g)), g
}

// watch records every player notification into f.journal.
func (f *fixture) watch(p *player.Player) {
	p.WeaponEquipped.Subscribe(func(w *inventory.Weapon) {
		f.journal = append(f.journal, "equipped:"+idOf(w))
	})
	p.WeaponUnequipped.Subscribe(func(w *inventory.Weapon) {
		f.journal = append(f.journal, "unequipped:"+idOf(w))
	})
	p.InventoryChanged.Subscribe(func(struct{}) {
		f.journal = append(f.journal, "inventory")
	})
}

func (f *fixture) reset() { f.journal = nil }

func idOf(w *inventory.Weapon) string {
	if w == nil {
		return "<none>"
	}
	return w.ID()
}
