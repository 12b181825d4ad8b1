package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/armory/internal/game/inventory"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := inventory.NewRegistry()
	cfg := rifleConfig()
	require.NoError(t, r.RegisterWeapon(cfg))

	got, ok := r.Weapon(cfg.ID)
	require.True(t, ok)
	assert.Same(t, cfg, got)

	_, ok = r.Weapon("missing")
	assert.False(t, ok)
}

func TestRegistry_RejectsDuplicate(t *testing.T) {
	r := inventory.NewRegistry()
	require.NoError(t, r.RegisterWeapon(rifleConfig()))
	assert.Error(t, r.RegisterWeapon(rifleConfig()))
}

func TestNewRegistryFrom_SortedAll(t *testing.T) {
	r, err := inventory.NewRegistryFrom([]*inventory.WeaponConfig{pistolConfig(), rifleConfig(), burstConfig()})
	require.NoError(t, err)
	all := r.AllWeapons()
	require.Len(t, all, 3)
	assert.Equal(t, "carbine-burst", all[0].ID)
	assert.Equal(t, "pistol-9mm", all[1].ID)
	assert.Equal(t, "rifle-ar", all[2].ID)
}

func TestNewRegistryFrom_Duplicate(t *testing.T) {
	_, err := inventory.NewRegistryFrom([]*inventory.WeaponConfig{rifleConfig(), rifleConfig()})
	assert.Error(t, err)
}
