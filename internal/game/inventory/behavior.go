package inventory

// Behavior is the per-weapon-type capability set the firing state machine
// depends on. Concrete weapon variants implement it; Weapon never inspects
// the concrete type.
type Behavior interface {
	// Equip is called when the weapon becomes the player's active weapon.
	Equip(w *Weapon)
	// Unequip is called when the weapon stops being the active weapon.
	Unequip(w *Weapon)
	// CanSwitchWeapons reports whether the player may switch away from w now,
	// e.g. false while a reload or cycling animation is in progress.
	CanSwitchWeapons(w *Weapon) bool
	// FireBullet applies the effect of one shot. It is invoked at the cadence
	// decided by the weapon's fire type, before the round leaves the clip.
	FireBullet(w *Weapon)
}

// ReleaseHook is implemented by behaviors that react to trigger release,
// such as charge-up weapons.
type ReleaseHook interface {
	FireReleased(w *Weapon, dt float64)
}

// ReloadHook is implemented by behaviors that react to a completed reload.
// loaded is the number of rounds moved from reserve into the clip.
type ReloadHook interface {
	Reloaded(w *Weapon, loaded int)
}

// BehaviorSource builds the Behavior for a weapon of the given type.
type BehaviorSource interface {
	BehaviorFor(cfg *WeaponConfig) (Behavior, error)
}

// BaseBehavior has no equip or fire side effects and never blocks switching.
type BaseBehavior struct{}

// Equip does nothing.
func (BaseBehavior) Equip(*Weapon) {}

// Unequip does nothing.
func (BaseBehavior) Unequip(*Weapon) {}

// CanSwitchWeapons always returns true.
func (BaseBehavior) CanSwitchWeapons(*Weapon) bool { return true }

// FireBullet does nothing.
func (BaseBehavior) FireBullet(*Weapon) {}

// BaseBehaviors is a BehaviorSource that returns BaseBehavior for every type.
type BaseBehaviors struct{}

// BehaviorFor returns BaseBehavior{}.
func (BaseBehaviors) BehaviorFor(*WeaponConfig) (Behavior, error) { return BaseBehavior{}, nil }
