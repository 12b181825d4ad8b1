package inventory_test

import (
	"github.com/cory-johannsen/armory/internal/game/inventory"
)

// rifleConfig returns a valid automatic primary config: 30 rounds, 8 rounds/s.
func rifleConfig() *inventory.WeaponConfig {
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

// pistolConfig returns a valid single-fire secondary config.
func pistolConfig() *inventory.WeaponConfig {
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

// burstConfig returns a valid semi-automatic primary config with a 3-round burst.
func burstConfig() *inventory.WeaponConfig {
	return &inventory.WeaponConfig{
		ID:              "carbine-burst",
		Name:            "Burst Carbine",
		Category:        inventory.CategoryPrimary,
		ClipCapacity:    30,
		FireRate:        10,
		MaxReserveAmmo:  90,
		DamagePerBullet: 8,
		FireType:        inventory.FireTypeSemiAutomatic,
		BurstLength:     3,
	}
}

// countingBehavior counts hook invocations.
type countingBehavior struct {
	fired     int
	equips    int
	unequips  int
	released  int
	reloaded  []int
	canSwitch bool
}

func newCountingBehavior() *countingBehavior {
	return &countingBehavior{canSwitch: true}
}

func (b *countingBehavior) FireBullet(*inventory.Weapon)            { b.fired++ }
func (b *countingBehavior) Equip(*inventory.Weapon)                 { b.equips++ }
func (b *countingBehavior) Unequip(*inventory.Weapon)               { b.unequips++ }
func (b *countingBehavior) CanSwitchWeapons(*inventory.Weapon) bool { return b.canSwitch }
func (b *countingBehavior) FireReleased(*inventory.Weapon, float64) { b.released++ }
func (b *countingBehavior) Reloaded(_ *inventory.Weapon, n int)     { b.reloaded = append(b.reloaded, n) }

// recorder captures clip and reserve notifications in emission order.
type recorder struct {
	clip    []int
	reserve []int
	order   []string
}

func record(w *inventory.Weapon) *recorder {
	r := &recorder{}
	w.ClipChanged.Subscribe(func(n int) {
		r.clip = append(r.clip, n)
		r.order = append(r.order, "clip")
	})
	w.ReserveChanged.Subscribe(func(n int) {
		r.reserve = append(r.reserve, n)
		r.order = append(r.order, "reserve")
	})
	return r
}
