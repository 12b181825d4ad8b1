// Package player arbitrates a combatant's three weapon slots and the active
// weapon that receives trigger input.
package player

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/game/event"
	"github.com/cory-johannsen/armory/internal/game/inventory"
)

var (
	// ErrUnknownSlot is returned for a slot outside Primary1, Primary2, Secondary.
	ErrUnknownSlot = errors.New("unknown weapon slot")
	// ErrCategoryMismatch is returned when a weapon's category does not fit the slot.
	ErrCategoryMismatch = errors.New("weapon category not accepted by slot")
	// ErrSwitchBlocked is returned when the active weapon refuses to be switched away.
	ErrSwitchBlocked = errors.New("active weapon cannot be switched now")
	// ErrAlreadyHeld is returned when a weapon instance already occupies another slot.
	ErrAlreadyHeld = errors.New("weapon already held in another slot")
)

// Player owns three weapon slots and tracks which one is active.
//
// The active weapon is stored as a slot reference and always resolved through
// the live slot contents, so it can never diverge from the inventory.
//
// Player is not safe for concurrent use.
//
// Invariants:
//   - Active(), when non-nil, is the contents of exactly one slot.
//   - Primary weapons only occupy SlotPrimary1/SlotPrimary2; secondary weapons only SlotSecondary.
type Player struct {
	slots     [3]*inventory.Weapon
	active    inventory.Slot
	hasActive bool
	logger    *zap.Logger

	// WeaponEquipped receives the newly active weapon, or nil for "no weapon".
	WeaponEquipped event.Broadcaster[*inventory.Weapon]
	// WeaponUnequipped receives the weapon that stopped being active.
	WeaponUnequipped event.Broadcaster[*inventory.Weapon]
	// InventoryChanged fires after every successful EquipWeapon.
	InventoryChanged event.Broadcaster[struct{}]
}

// New returns a Player with empty slots and no active weapon. Players must be
// built with New or NewWithLoadout.
//
// Postcondition: Active() == nil.
func New(logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{logger: logger}
}

// NewWithLoadout places each weapon into its slot, then activates
// SlotPrimary1, matching a freshly spawned player.
//
// Postcondition: on success every weapon is slotted and Active() is the
// SlotPrimary1 weapon (nil when that slot is empty).
func NewWithLoadout(weapons map[inventory.Slot]*inventory.Weapon, logger *zap.Logger) (*Player, error) {
	for slot := range weapons {
		if !slot.IsValid() {
			return nil, fmt.Errorf("player: NewWithLoadout: %w: %q", ErrUnknownSlot, slot)
		}
	}
	p := New(logger)
	for _, slot := range inventory.Slots {
		w, ok := weapons[slot]
		if !ok {
			continue
		}
		if err := p.EquipWeapon(w, slot); err != nil {
			return nil, err
		}
	}
	if err := p.SwitchActiveWeapon(inventory.SlotPrimary1); err != nil {
		return nil, err
	}
	return p, nil
}

// Weapon returns the contents of slot, or nil when empty or unknown.
func (p *Player) Weapon(slot inventory.Slot) *inventory.Weapon {
	i := slot.Index()
	if i < 0 {
		return nil
	}
	return p.slots[i]
}

// Active returns the active weapon, or nil when none is active.
func (p *Player) Active() *inventory.Weapon {
	if !p.hasActive {
		return nil
	}
	return p.Weapon(p.active)
}

// ActiveSlot returns the slot of the active weapon and whether one is active.
func (p *Player) ActiveSlot() (inventory.Slot, bool) {
	return p.active, p.hasActive
}

// SwitchActiveWeapon makes the weapon in slot active. Switching to the weapon
// that is already active is a silent no-op. Switching to an empty slot
// leaves the player with no active weapon.
//
// Postcondition: on nil error Active() == Weapon(slot); on error no state
// changed and nothing was emitted.
func (p *Player) SwitchActiveWeapon(slot inventory.Slot) error {
	if !slot.IsValid() {
		return p.reject("switch", slot, ErrUnknownSlot)
	}
	target := p.Weapon(slot)
	current := p.Active()
	if target == current {
		return nil
	}
	if current != nil {
		if !current.CanSwitchWeapons() {
			return p.reject("switch", slot, ErrSwitchBlocked)
		}
		p.unequipActive()
	}
	p.activate(slot)
	return nil
}

// EquipWeapon stores w in slot, replacing the previous occupant. A nil w
// empties the slot. When the occupant was the active weapon it is unequipped
// and w becomes active immediately.
//
// Postcondition: on nil error Weapon(slot) == w and InventoryChanged was
// emitted; on error no state changed and nothing was emitted.
func (p *Player) EquipWeapon(w *inventory.Weapon, slot inventory.Slot) error {
	if !slot.IsValid() {
		return p.reject("equip", slot, ErrUnknownSlot)
	}
	if w != nil && !slot.Accepts(w.Category()) {
		return p.reject("equip", slot, fmt.Errorf("%w: %s weapon %q into %s", ErrCategoryMismatch, w.Category(), w.Name(), slot))
	}
	if w != nil {
		for _, other := range inventory.Slots {
			if other != slot && p.Weapon(other) == w {
				return p.reject("equip", slot, fmt.Errorf("%w: %s", ErrAlreadyHeld, other))
			}
		}
	}

	occupant := p.Weapon(slot)
	activateNow := false
	if occupant != nil && occupant == p.Active() {
		if !occupant.CanSwitchWeapons() {
			return p.reject("equip", slot, ErrSwitchBlocked)
		}
		p.unequipActive()
		activateNow = true
	}

	p.slots[slot.Index()] = w
	if activateNow {
		p.activate(slot)
	}

	p.logger.Debug("weapon slotted",
		zap.String("slot", string(slot)),
		zap.String("weapon", weaponName(w)),
		zap.Bool("activated", activateNow),
	)
	p.InventoryChanged.Emit(struct{}{})
	return nil
}

// unequipActive runs the active weapon's unequip hook and announces it.
// The slot reference is cleared so Active() is nil until activate runs.
func (p *Player) unequipActive() {
	w := p.Active()
	p.hasActive = false
	if w == nil {
		return
	}
	w.Unequip()
	p.logger.Debug("weapon unequipped", zap.String("weapon", w.Name()))
	p.WeaponUnequipped.Emit(w)
}

// activate makes the contents of slot active, possibly none, and announces it.
func (p *Player) activate(slot inventory.Slot) {
	w := p.Weapon(slot)
	p.active = slot
	p.hasActive = w != nil
	if w != nil {
		w.Equip()
	}
	p.logger.Debug("weapon equipped",
		zap.String("slot", string(slot)),
		zap.String("weapon", weaponName(w)),
	)
	p.WeaponEquipped.Emit(w)
}

func (p *Player) reject(op string, slot inventory.Slot, err error) error {
	p.logger.Warn("weapon request rejected",
		zap.String("op", op),
		zap.String("slot", string(slot)),
		zap.Error(err),
	)
	return fmt.Errorf("player: %s %s: %w", op, slot, err)
}

func weaponName(w *inventory.Weapon) string {
	if w == nil {
		return ""
	}
	return w.Name()
}
