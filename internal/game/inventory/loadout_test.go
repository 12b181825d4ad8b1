package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/armory/internal/game/inventory"
)

func TestSlot_Category(t *testing.T) {
	assert.Equal(t, inventory.CategoryPrimary, inventory.SlotPrimary1.Category())
	assert.Equal(t, inventory.CategoryPrimary, inventory.SlotPrimary2.Category())
	assert.Equal(t, inventory.CategorySecondary, inventory.SlotSecondary.Category())
}

func TestParseSlot(t *testing.T) {
	s, err := inventory.ParseSlot("primary2")
	assert.NoError(t, err)
	assert.Equal(t, inventory.SlotPrimary2, s)

	_, err = inventory.ParseSlot("holster")
	assert.Error(t, err)
}

func TestSlot_Index(t *testing.T) {
	assert.Equal(t, 0, inventory.SlotPrimary1.Index())
	assert.Equal(t, 2, inventory.SlotSecondary.Index())
	assert.Equal(t, -1, inventory.Slot("bogus").Index())
}

func TestProperty_Slot_AcceptsExactlyMatchingCategory(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		slot := rapid.SampledFrom([]inventory.Slot{
			inventory.SlotPrimary1, inventory.SlotPrimary2, inventory.SlotSecondary, "bogus",
		}).Draw(rt, "slot")
		cat := rapid.SampledFrom([]inventory.Category{
			inventory.CategoryPrimary, inventory.CategorySecondary,
		}).Draw(rt, "category")
		want := slot.IsValid() &&
			((cat == inventory.CategorySecondary) == (slot == inventory.SlotSecondary))
		if slot.Accepts(cat) != want {
			rt.Fatalf("Accepts(%q, %q) = %v, want %v", slot, cat, slot.Accepts(cat), want)
		}
	})
}
