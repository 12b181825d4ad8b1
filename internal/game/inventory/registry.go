package inventory

import (
	"fmt"
	"sort"
)

// Registry holds all loaded weapon configurations indexed by ID.
type Registry struct {
	weapons map[string]*WeaponConfig
}

// NewRegistry returns an empty Registry.
//
// Postcondition: the internal map is initialised.
func NewRegistry() *Registry {
	return &Registry{
		weapons: make(map[string]*WeaponConfig),
	}
}

// NewRegistryFrom registers every config in cfgs.
//
// Postcondition: returns the populated Registry or the first duplicate-ID error.
func NewRegistryFrom(cfgs []*WeaponConfig) (*Registry, error) {
	r := NewRegistry()
	for _, c := range cfgs {
		if err := r.RegisterWeapon(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RegisterWeapon adds w to the registry.
//
// Precondition:  w must not be nil.
// Postcondition: Weapon(w.ID) returns w; returns error if w.ID already registered.
func (r *Registry) RegisterWeapon(w *WeaponConfig) error {
	if _, exists := r.weapons[w.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterWeapon: weapon ID %q already registered", w.ID)
	}
	r.weapons[w.ID] = w
	return nil
}

// Weapon returns the WeaponConfig for the given id and whether it was found.
func (r *Registry) Weapon(id string) (*WeaponConfig, bool) {
	w, ok := r.weapons[id]
	return w, ok
}

// AllWeapons returns all registered WeaponConfigs sorted by ID.
//
// Postcondition: len(result) == number of registered weapons.
func (r *Registry) AllWeapons() []*WeaponConfig {
	out := make([]*WeaponConfig, 0, len(r.weapons))
	for _, w := range r.weapons {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
