// Package inventory provides weapon definitions, the per-weapon firing and
// ammunition state machine, and the slot rules used by player loadouts.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FireType is the cadence policy a weapon applies to trigger input.
type FireType string

const (
	// FireTypeSingle fires one round per trigger press.
	FireTypeSingle FireType = "single"
	// FireTypeAutomatic fires continuously while the trigger is held.
	FireTypeAutomatic FireType = "automatic"
	// FireTypeSemiAutomatic fires a bounded burst while the trigger is held.
	FireTypeSemiAutomatic FireType = "semi_automatic"
)

// IsValid reports whether f is one of the known fire types.
func (f FireType) IsValid() bool {
	switch f {
	case FireTypeSingle, FireTypeAutomatic, FireTypeSemiAutomatic:
		return true
	}
	return false
}

// Category is the inventory class of a weapon; it decides which slots accept it.
type Category string

const (
	// CategoryPrimary weapons occupy the two primary slots.
	CategoryPrimary Category = "primary"
	// CategorySecondary weapons occupy the secondary slot.
	CategorySecondary Category = "secondary"
)

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	return c == CategoryPrimary || c == CategorySecondary
}

// WeaponConfig defines the static properties of a weapon type loaded from YAML.
// A single WeaponConfig is shared by pointer between every Weapon of that type
// and must not be mutated after loading.
type WeaponConfig struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Category        Category `yaml:"category"`
	ClipCapacity    int      `yaml:"clip_capacity"`
	FireRate        float64  `yaml:"fire_rate"` // bullets per second
	MaxReserveAmmo  int      `yaml:"max_reserve_ammo"`
	DamagePerBullet float64  `yaml:"damage_per_bullet"`
	FireType        FireType `yaml:"fire_type"`
	BurstLength     int      `yaml:"burst_length"` // semi_automatic only
	Script          string   `yaml:"script"`       // optional Lua behavior file
}

// FirePeriod returns the minimum accumulated hold time, in seconds, between
// two periodic shots.
//
// Precondition: FireRate > 0.
func (w *WeaponConfig) FirePeriod() float64 {
	return 1 / w.FireRate
}

// IsBurst reports whether the weapon limits each trigger hold to a burst.
func (w *WeaponConfig) IsBurst() bool {
	return w.FireType == FireTypeSemiAutomatic
}

// Validate checks that the WeaponConfig satisfies its invariants.
// Precondition: w is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (w *WeaponConfig) Validate() error {
	var errs []error
	if w.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if w.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !w.Category.IsValid() {
		errs = append(errs, fmt.Errorf("Category must be primary or secondary, got %q", w.Category))
	}
	if w.ClipCapacity <= 0 {
		errs = append(errs, fmt.Errorf("ClipCapacity must be > 0, got %d", w.ClipCapacity))
	}
	if w.FireRate <= 0 {
		errs = append(errs, fmt.Errorf("FireRate must be > 0, got %g", w.FireRate))
	}
	if w.MaxReserveAmmo < 0 {
		errs = append(errs, fmt.Errorf("MaxReserveAmmo must be >= 0, got %d", w.MaxReserveAmmo))
	}
	if w.DamagePerBullet < 1 {
		errs = append(errs, fmt.Errorf("DamagePerBullet must be >= 1, got %g", w.DamagePerBullet))
	}
	if !w.FireType.IsValid() {
		errs = append(errs, fmt.Errorf("FireType must be one of [single, automatic, semi_automatic], got %q", w.FireType))
	}
	if w.IsBurst() && w.BurstLength <= 0 {
		errs = append(errs, fmt.Errorf("semi_automatic BurstLength must be > 0, got %d", w.BurstLength))
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %v", errs)
	}
	return nil
}

// LoadWeapons reads all *.yaml files from dir, parses each as a WeaponConfig,
// validates it, and returns the collected slice.
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid WeaponConfigs or the first encountered error.
func LoadWeapons(dir string) ([]*WeaponConfig, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadWeapons: cannot read directory %q: %w", dir, err)
	}

	var weapons []*WeaponConfig
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadWeapons: cannot read file %q: %w", path, err)
		}
		w := WeaponConfig{BurstLength: defaultBurstLength}
		if err := yaml.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("LoadWeapons: cannot parse file %q: %w", path, err)
		}
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("LoadWeapons: invalid weapon in %q: %w", path, err)
		}
		weapons = append(weapons, &w)
	}
	return weapons, nil
}

// defaultBurstLength applies when a semi_automatic file omits burst_length.
const defaultBurstLength = 10
