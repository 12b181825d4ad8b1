package driver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/armory/internal/driver"
	"github.com/cory-johannsen/armory/internal/game/inventory"
	"github.com/cory-johannsen/armory/internal/game/player"
)

// samples is an Input returning a fixed sequence, then Quit.
type samples struct {
	list []driver.Sample
	i    int
}

func (s *samples) Poll() driver.Sample {
	if s.i >= len(s.list) {
		return driver.Sample{Quit: true}
	}
	out := s.list[s.i]
	s.i++
	return out
}

func down(n int) []driver.Sample {
	out := make([]driver.Sample, n)
	for i := range out {
		out[i].TriggerDown = true
	}
	return out
}

func loadedPlayer(t testing.TB) (*player.Player, *inventory.Weapon, *inventory.Weapon) {
	t.Helper()
	rifle := inventory.NewWeapon(&inventory.WeaponConfig{
		ID: "rifle-ar", Name: "Assault Rifle", Category: inventory.CategoryPrimary,
		ClipCapacity: 30, FireRate: 8, MaxReserveAmmo: 90, DamagePerBullet: 10,
		FireType: inventory.FireTypeAutomatic,
	}, inventory.WithFullClip(), inventory.WithReserve(90))
	pistol := inventory.NewWeapon(&inventory.WeaponConfig{
		ID: "pistol-9mm", Name: "9mm Pistol", Category: inventory.CategorySecondary,
		ClipCapacity: 12, FireRate: 4, MaxReserveAmmo: 48, DamagePerBullet: 12,
		FireType: inventory.FireTypeSingle,
	}, inventory.WithFullClip(), inventory.WithReserve(24))
	p, err := player.NewWithLoadout(map[inventory.Slot]*inventory.Weapon{
		inventory.SlotPrimary1:  rifle,
		inventory.SlotSecondary: pistol,
	}, nil)
	require.NoError(t, err)
	return p, rifle, pistol
}
