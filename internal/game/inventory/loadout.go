package inventory

import "fmt"

// Slot identifies a carried-weapon position on a player.
type Slot string

const (
	// SlotPrimary1 is the first primary weapon slot.
	SlotPrimary1 Slot = "primary1"
	// SlotPrimary2 is the second primary weapon slot.
	SlotPrimary2 Slot = "primary2"
	// SlotSecondary is the sidearm slot.
	SlotSecondary Slot = "secondary"
)

// Slots lists every slot in display order.
var Slots = []Slot{SlotPrimary1, SlotPrimary2, SlotSecondary}

// ParseSlot converts a slot name to a Slot.
//
// Postcondition: returns an error iff s names no slot.
func ParseSlot(s string) (Slot, error) {
	slot := Slot(s)
	if !slot.IsValid() {
		return "", fmt.Errorf("inventory: unknown slot %q", s)
	}
	return slot, nil
}

// IsValid reports whether s is one of the three known slots.
func (s Slot) IsValid() bool {
	switch s {
	case SlotPrimary1, SlotPrimary2, SlotSecondary:
		return true
	}
	return false
}

// Index returns the position of s in Slots, or -1 when s is unknown.
func (s Slot) Index() int {
	for i, v := range Slots {
		if v == s {
			return i
		}
	}
	return -1
}

// Category returns the weapon category the slot accepts.
//
// Precondition: s.IsValid().
func (s Slot) Category() Category {
	if s == SlotSecondary {
		return CategorySecondary
	}
	return CategoryPrimary
}

// Accepts reports whether a weapon of category c may be placed in s.
func (s Slot) Accepts(c Category) bool {
	return s.IsValid() && s.Category() == c
}
