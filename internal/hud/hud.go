// Package hud maintains the ammunition display model for a player's active
// weapon from the player and weapon notifications.
package hud

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/game/event"
	"github.com/cory-johannsen/armory/internal/game/inventory"
	"github.com/cory-johannsen/armory/internal/game/player"
)

// SlotLine describes one inventory slot for display.
type SlotLine struct {
	Slot       inventory.Slot
	WeaponName string // empty when the slot is empty
	Active     bool
}

// View is the rendered state of the HUD.
type View struct {
	// Visible is false when the player has no active weapon; the ammunition
	// fields are then stale and must not be drawn.
	Visible      bool
	WeaponName   string
	Clip         int
	ClipCapacity int
	Reserve      int
	Slots        []SlotLine
}

// Lines renders v as fixed text rows: the ammunition line followed by one
// line per slot.
func (v View) Lines() []string {
	lines := make([]string, 0, len(v.Slots)+1)
	if v.Visible {
		lines = append(lines, fmt.Sprintf("%s  %d / %d  reserve %d", v.WeaponName, v.Clip, v.ClipCapacity, v.Reserve))
	} else {
		lines = append(lines, "-- no weapon --")
	}
	for i, s := range v.Slots {
		marker := ' '
		if s.Active {
			marker = '>'
		}
		name := s.WeaponName
		if name == "" {
			name = "(empty)"
		}
		lines = append(lines, fmt.Sprintf("%c %d %-9s %s", marker, i+1, s.Slot, name))
	}
	return lines
}

// HUD follows one player. It subscribes to the active weapon's clip and
// reserve notifications while that weapon is equipped and drops them when
// it is unequipped.
//
// HUD is not safe for concurrent use; it runs on the goroutine that drives
// the player.
type HUD struct {
	player *player.Player
	logger *zap.Logger

	view       View
	playerSubs []event.Subscription
	weaponSubs []event.Subscription

	// Changed receives the full view after every update.
	Changed event.Broadcaster[View]
}

// New attaches a HUD to p and renders the current active weapon.
//
// Precondition: p must not be nil.
// Postcondition: View() reflects p's current state.
func New(p *player.Player, logger *zap.Logger) *HUD {
	if p == nil {
		panic("hud: New: player must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &HUD{player: p, logger: logger}
	h.playerSubs = []event.Subscription{
		p.WeaponEquipped.Subscribe(h.onEquipped),
		p.WeaponUnequipped.Subscribe(h.onUnequipped),
		p.InventoryChanged.Subscribe(func(struct{}) { h.refreshSlots(); h.publish() }),
	}
	h.refreshSlots()
	h.attach(p.Active())
	return h
}

// View returns a copy of the current view.
func (h *HUD) View() View {
	v := h.view
	v.Slots = append([]SlotLine(nil), h.view.Slots...)
	return v
}

// Close detaches the HUD from the player and the active weapon.
//
// Postcondition: no later player or weapon notification reaches the HUD.
func (h *HUD) Close() {
	for _, s := range h.playerSubs {
		s.Cancel()
	}
	h.playerSubs = nil
	h.detach()
}

func (h *HUD) onEquipped(w *inventory.Weapon) {
	h.detach()
	h.refreshSlots()
	h.attach(w)
	h.publish()
}

func (h *HUD) onUnequipped(*inventory.Weapon) {
	h.detach()
	h.view.Visible = false
	h.refreshSlots()
	h.publish()
}

// attach shows w and subscribes to its ammunition notifications. A nil w
// hides the ammunition line.
func (h *HUD) attach(w *inventory.Weapon) {
	if w == nil {
		h.view.Visible = false
		return
	}
	s := w.Snapshot()
	h.view.Visible = true
	h.view.WeaponName = s.Name
	h.view.ClipCapacity = s.ClipCapacity
	h.view.Clip = s.Clip
	h.view.Reserve = s.Reserve
	h.weaponSubs = []event.Subscription{
		w.ClipChanged.Subscribe(func(n int) { h.view.Clip = n; h.publish() }),
		w.ReserveChanged.Subscribe(func(n int) { h.view.Reserve = n; h.publish() }),
	}
	h.logger.Debug("hud attached", zap.String("weapon", s.ID))
}

func (h *HUD) detach() {
	for _, s := range h.weaponSubs {
		s.Cancel()
	}
	h.weaponSubs = nil
}

func (h *HUD) refreshSlots() {
	active, hasActive := h.player.ActiveSlot()
	lines := make([]SlotLine, 0, len(inventory.Slots))
	for _, s := range inventory.Slots {
		line := SlotLine{Slot: s, Active: hasActive && s == active}
		if w := h.player.Weapon(s); w != nil {
			line.WeaponName = w.Name()
		}
		lines = append(lines, line)
	}
	h.view.Slots = lines
}

func (h *HUD) publish() {
	h.Changed.Emit(h.View())
}
