package inventory

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/game/event"
)

// Weapon is one carried weapon: its clip and reserve counters and the trigger
// cadence state, bound for life to a shared WeaponConfig.
//
// Weapon is not safe for concurrent use.
//
// Invariants:
//   - 0 <= Clip() <= Config().ClipCapacity
//   - 0 <= Reserve() <= Config().MaxReserveAmmo
//   - Config() and Category() never change after NewWeapon.
type Weapon struct {
	id       string
	cfg      *WeaponConfig
	category Category
	behavior Behavior
	logger   *zap.Logger

	clip    int
	reserve int

	// fireTime is the hold time accumulated since the last press or shot.
	fireTime float64
	// burstFired counts rounds fired since the last press.
	burstFired int
	// pressTick is true only during the firing step run by FirePressed.
	pressTick bool

	// ClipChanged receives the new clip count whenever it changes or a reload runs.
	ClipChanged event.Broadcaster[int]
	// ReserveChanged receives the new reserve count on reload and ammo pickup.
	ReserveChanged event.Broadcaster[int]
}

// Option configures a Weapon at construction.
type Option func(*Weapon)

// WithClip sets the starting clip count, clamped to [0, ClipCapacity].
func WithClip(n int) Option {
	return func(w *Weapon) { w.clip = clamp(n, 0, w.cfg.ClipCapacity) }
}

// WithFullClip starts the weapon with a full clip.
func WithFullClip() Option {
	return func(w *Weapon) { w.clip = w.cfg.ClipCapacity }
}

// WithReserve sets the starting reserve count, clamped to [0, MaxReserveAmmo].
func WithReserve(n int) Option {
	return func(w *Weapon) { w.reserve = clamp(n, 0, w.cfg.MaxReserveAmmo) }
}

// WithBehavior sets the concrete weapon behavior. nil keeps BaseBehavior.
func WithBehavior(b Behavior) Option {
	return func(w *Weapon) {
		if b != nil {
			w.behavior = b
		}
	}
}

// WithLogger sets the logger used for reload and ammo diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(w *Weapon) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithID overrides the generated instance ID.
func WithID(id string) Option {
	return func(w *Weapon) { w.id = id }
}

// NewWeapon returns a Weapon of type cfg with an empty clip and reserve
// unless options say otherwise. The category is taken from cfg.
//
// Precondition:  cfg must not be nil (panics otherwise) and must satisfy cfg.Validate().
// Postcondition: Config() == cfg; counters are within their invariant ranges.
func NewWeapon(cfg *WeaponConfig, opts ...Option) *Weapon {
	if cfg == nil {
		panic("inventory: NewWeapon: cfg must not be nil")
	}
	w := &Weapon{
		id:       uuid.New().String(),
		cfg:      cfg,
		category: cfg.Category,
		behavior: BaseBehavior{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ID returns the unique instance identifier.
func (w *Weapon) ID() string { return w.id }

// Config returns the shared configuration. Callers must not mutate it.
func (w *Weapon) Config() *WeaponConfig { return w.cfg }

// Category returns the inventory category fixed at construction.
func (w *Weapon) Category() Category { return w.category }

// Name returns the configured display name.
func (w *Weapon) Name() string { return w.config().Name }

// Clip returns the number of rounds ready to fire.
func (w *Weapon) Clip() int { return w.clip }

// Reserve returns the number of rounds carried but not loaded.
func (w *Weapon) Reserve() int { return w.reserve }

// BurstFired returns the rounds fired since the last trigger press.
func (w *Weapon) BurstFired() int { return w.burstFired }

// FireTime returns the hold time accumulated since the last press or shot.
func (w *Weapon) FireTime() float64 { return w.fireTime }

// Equip runs the behavior's equip hook.
func (w *Weapon) Equip() { w.behavior.Equip(w) }

// Unequip runs the behavior's unequip hook.
func (w *Weapon) Unequip() { w.behavior.Unequip(w) }

// CanSwitchWeapons reports whether the holder may switch away from this weapon.
func (w *Weapon) CanSwitchWeapons() bool { return w.behavior.CanSwitchWeapons(w) }

// WeaponState is a point-in-time copy of a weapon's observable state.
type WeaponState struct {
	ID             string
	ConfigID       string
	Name           string
	Category       Category
	FireType       FireType
	Clip           int
	ClipCapacity   int
	Reserve        int
	MaxReserveAmmo int
	BurstFired     int
}

// Snapshot returns the weapon's current observable state.
func (w *Weapon) Snapshot() WeaponState {
	cfg := w.config()
	return WeaponState{
		ID:             w.id,
		ConfigID:       cfg.ID,
		Name:           cfg.Name,
		Category:       w.category,
		FireType:       cfg.FireType,
		Clip:           w.clip,
		ClipCapacity:   cfg.ClipCapacity,
		Reserve:        w.reserve,
		MaxReserveAmmo: cfg.MaxReserveAmmo,
		BurstFired:     w.burstFired,
	}
}

// config returns cfg, panicking when the weapon was not built by NewWeapon.
func (w *Weapon) config() *WeaponConfig {
	if w.cfg == nil {
		panic("inventory: Weapon used without a WeaponConfig")
	}
	return w.cfg
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
