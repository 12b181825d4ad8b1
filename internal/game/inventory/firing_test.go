package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/armory/internal/game/inventory"
)

const frame = 1.0 / 60.0

// hold presses the trigger then holds it for ticks-1 further frames.
func hold(w *inventory.Weapon, ticks int, dt float64) {
	w.FirePressed(dt)
	for i := 1; i < ticks; i++ {
		w.FireHeld(dt)
	}
}

func TestFirePressed_Single_FiresOnce(t *testing.T) {
	b := newCountingBehavior()
	w := inventory.NewWeapon(pistolConfig(), inventory.WithFullClip(), inventory.WithBehavior(b))

	hold(w, 120, frame)

	assert.Equal(t, 1, b.fired)
	assert.Equal(t, 11, w.Clip())
	assert.Equal(t, 1, w.BurstFired())
}

func TestFirePressed_Single_EachPressFires(t *testing.T) {
	b := newCountingBehavior()
	w := inventory.NewWeapon(pistolConfig(), inventory.WithFullClip(), inventory.WithBehavior(b))

	for range 3 {
		hold(w, 10, frame)
		w.FireReleased(frame)
	}

	assert.Equal(t, 3, b.fired)
	assert.Equal(t, 3, b.released)
	assert.Equal(t, 9, w.Clip())
}

// TestFireHeld_Automatic_EightPerSecond verifies a rate-8 weapon held for one
// second of 60 Hz frames fires 8 rounds.
func TestFireHeld_Automatic_EightPerSecond(t *testing.T) {
	b := newCountingBehavior()
	w := inventory.NewWeapon(rifleConfig(), inventory.WithFullClip(), inventory.WithBehavior(b))

	hold(w, 60, frame)

	assert.Equal(t, 8, b.fired)
	assert.Equal(t, 22, w.Clip())
}

// TestFireHeld_Automatic_NoCarryOver verifies that a long frame only yields
// one round and the excess time is discarded.
func TestFireHeld_Automatic_NoCarryOver(t *testing.T) {
	b := newCountingBehavior()
	w := inventory.NewWeapon(rifleConfig(), inventory.WithFullClip(), inventory.WithBehavior(b))

	w.FirePressed(frame)
	require.Equal(t, 1, b.fired)

	w.FireHeld(1.0)
	assert.Equal(t, 2, b.fired)
	assert.Zero(t, w.FireTime())

	w.FireHeld(0.1)
	assert.Equal(t, 2, b.fired, "0.1s is below the 0.125s period")
	w.FireHeld(0.03)
	assert.Equal(t, 3, b.fired)
}

func TestFireHeld_Automatic_ExactlyPeriodDoesNotFire(t *testing.T) {
	b := newCountingBehavior()
	w := inventory.NewWeapon(rifleConfig(), inventory.WithFullClip(), inventory.WithBehavior(b))

	w.FirePressed(0)
	w.FireHeld(0.125)

	assert.Equal(t, 1, b.fired)
}

// TestFireHeld_ZeroDeltaDoesNotRefire verifies that held frames with no
// elapsed time never fire after the press frame.
func TestFireHeld_ZeroDeltaDoesNotRefire(t *testing.T) {
	for _, cfg := range []*inventory.WeaponConfig{rifleConfig(), pistolConfig(), burstConfig()} {
		b := newCountingBehavior()
		w := inventory.NewWeapon(cfg, inventory.WithFullClip(), inventory.WithBehavior(b))
		hold(w, 10, 0)
		assert.Equal(t, 1, b.fired, cfg.ID)
	}
}

func TestFireHeld_SemiAutomatic_StopsAtBurst(t *testing.T) {
	b := newCountingBehavior()
	w := inventory.NewWeapon(burstConfig(), inventory.WithFullClip(), inventory.WithBehavior(b))

	hold(w, 600, frame)

	assert.Equal(t, 3, b.fired)
	assert.Equal(t, 3, w.BurstFired())
	assert.Equal(t, 27, w.Clip())
}

func TestFirePressed_SemiAutomatic_NewPressResetsBurst(t *testing.T) {
	b := newCountingBehavior()
	w := inventory.NewWeapon(burstConfig(), inventory.WithFullClip(), inventory.WithBehavior(b))

	hold(w, 120, frame)
	w.FireReleased(frame)
	require.Equal(t, 3, b.fired)

	hold(w, 120, frame)
	assert.Equal(t, 6, b.fired)
}

// TestFireReleased_DoesNotResetBurst verifies that releasing without a new
// press leaves the burst exhausted.
func TestFireReleased_DoesNotResetBurst(t *testing.T) {
	b := newCountingBehavior()
	w := inventory.NewWeapon(burstConfig(), inventory.WithFullClip(), inventory.WithBehavior(b))

	hold(w, 120, frame)
	w.FireReleased(frame)
	for range 120 {
		w.FireHeld(frame)
	}

	assert.Equal(t, 3, b.fired)
}

// TestFiring_EmptyClipReloadsInsteadOfFiring verifies the firing step reloads
// an empty clip and does not fire on the same step.
func TestFiring_EmptyClipReloadsInsteadOfFiring(t *testing.T) {
	b := newCountingBehavior()
	w := inventory.NewWeapon(rifleConfig(), inventory.WithReserve(50), inventory.WithBehavior(b))
	rec := record(w)

	w.FirePressed(frame)

	assert.Zero(t, b.fired)
	assert.Equal(t, 30, w.Clip())
	assert.Equal(t, 20, w.Reserve())
	assert.Equal(t, []int{30}, rec.clip)
	assert.Equal(t, []int{20}, rec.reserve)
	assert.Equal(t, []int{30}, b.reloaded)
}

func TestFiring_EmptyClipNoReserveDoesNothing(t *testing.T) {
	b := newCountingBehavior()
	w := inventory.NewWeapon(rifleConfig(), inventory.WithBehavior(b))
	rec := record(w)

	hold(w, 30, frame)

	assert.Zero(t, b.fired)
	assert.Empty(t, rec.order)
}

// TestFiring_SingleAfterReloadWaitsForNextPress verifies a single-fire weapon
// that reloads on the press frame does not fire until pressed again.
func TestFiring_SingleAfterReloadWaitsForNextPress(t *testing.T) {
	b := newCountingBehavior()
	w := inventory.NewWeapon(pistolConfig(), inventory.WithReserve(12), inventory.WithBehavior(b))

	hold(w, 30, frame)
	require.Zero(t, b.fired)
	require.Equal(t, 12, w.Clip())

	w.FirePressed(frame)
	assert.Equal(t, 1, b.fired)
}

func TestFiring_EachBulletEmitsClipChanged(t *testing.T) {
	w := inventory.NewWeapon(rifleConfig(), inventory.WithClip(3))
	rec := record(w)

	hold(w, 120, frame)

	assert.Equal(t, []int{2, 1, 0}, rec.clip)
	assert.Zero(t, w.Clip())
}

func TestFiring_WithoutConfigPanics(t *testing.T) {
	var w inventory.Weapon
	assert.Panics(t, func() { w.FirePressed(frame) })
	assert.Panics(t, func() { w.FireHeld(frame) })
	assert.Panics(t, func() { w.FireReleased(frame) })
}

func TestNewWeapon_NilConfigPanics(t *testing.T) {
	assert.Panics(t, func() { inventory.NewWeapon(nil) })
}

func TestProperty_Single_AtMostOnePerPress(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := newCountingBehavior()
		w := inventory.NewWeapon(pistolConfig(), inventory.WithFullClip(), inventory.WithBehavior(b))
		w.FirePressed(rapid.Float64Range(0, 0.1).Draw(rt, "press_dt"))
		n := rapid.IntRange(0, 500).Draw(rt, "holds")
		for i := 0; i < n; i++ {
			w.FireHeld(rapid.Float64Range(0, 1).Draw(rt, "dt"))
		}
		if b.fired > 1 {
			rt.Fatalf("single fired %d rounds in one press cycle", b.fired)
		}
	})
}

func TestProperty_SemiAutomatic_NeverExceedsBurst(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := burstConfig()
		cfg.BurstLength = rapid.IntRange(1, 8).Draw(rt, "burst")
		b := newCountingBehavior()
		w := inventory.NewWeapon(cfg, inventory.WithFullClip(), inventory.WithBehavior(b))
		w.FirePressed(frame)
		n := rapid.IntRange(0, 500).Draw(rt, "holds")
		for i := 0; i < n; i++ {
			w.FireHeld(rapid.Float64Range(0, 0.5).Draw(rt, "dt"))
		}
		if b.fired > cfg.BurstLength {
			rt.Fatalf("fired %d > burst %d", b.fired, cfg.BurstLength)
		}
	})
}

// TestProperty_Automatic_ShotsSeparatedByPeriod verifies that between two
// consecutive periodic shots strictly more than FirePeriod of hold time
// accumulated.
func TestProperty_Automatic_ShotsSeparatedByPeriod(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := rifleConfig()
		cfg.ClipCapacity = 1000
		w := inventory.NewWeapon(cfg, inventory.WithFullClip())
		w.FirePressed(frame)
		sinceShot := 0.0
		n := rapid.IntRange(1, 300).Draw(rt, "holds")
		for i := 0; i < n; i++ {
			dt := rapid.Float64Range(0, 0.2).Draw(rt, "dt")
			before := w.Clip()
			w.FireHeld(dt)
			sinceShot += dt
			if w.Clip() < before {
				if sinceShot <= cfg.FirePeriod() {
					rt.Fatalf("shot after %.4fs, period %.4fs", sinceShot, cfg.FirePeriod())
				}
				sinceShot = 0
			}
		}
	})
}

func TestProperty_ClipWithinBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := rapid.SampledFrom([]*inventory.WeaponConfig{rifleConfig(), pistolConfig(), burstConfig()}).Draw(rt, "cfg")
		w := inventory.NewWeapon(cfg,
			inventory.WithClip(rapid.IntRange(-10, 100).Draw(rt, "clip")),
			inventory.WithReserve(rapid.IntRange(-10, 200).Draw(rt, "reserve")),
		)
		ops := rapid.IntRange(0, 200).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			switch rapid.IntRange(0, 4).Draw(rt, "op") {
			case 0:
				w.FirePressed(frame)
			case 1:
				w.FireHeld(rapid.Float64Range(0, 0.5).Draw(rt, "dt"))
			case 2:
				w.FireReleased(frame)
			case 3:
				w.Reload()
			case 4:
				w.AddReserveAmmo(rapid.IntRange(-100, 100).Draw(rt, "ammo"))
			}
			if w.Clip() < 0 || w.Clip() > cfg.ClipCapacity {
				rt.Fatalf("clip %d out of [0,%d]", w.Clip(), cfg.ClipCapacity)
			}
			if w.Reserve() < 0 || w.Reserve() > cfg.MaxReserveAmmo {
				rt.Fatalf("reserve %d out of [0,%d]", w.Reserve(), cfg.MaxReserveAmmo)
			}
		}
	})
}
