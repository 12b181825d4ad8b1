package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/game/inventory"
)

// Hook names looked up as Lua globals. Every hook receives a weapon table as
// its first argument; a missing hook is a no-op.
const (
	HookEquip            = "equip"
	HookUnequip          = "unequip"
	HookCanSwitchWeapons = "can_switch_weapons"
	HookFireBullet       = "fire_bullet"
	HookFireReleased     = "fire_released"
	HookReloaded         = "reloaded"
)

// Behavior adapts one Lua VM to inventory.Behavior. Globals set by the script
// persist between hook calls, so a script may keep per-weapon state.
//
// Behavior is not safe for concurrent use; it follows the owning Weapon.
type Behavior struct {
	L         *lua.LState
	script    string
	instLimit int
	logger    *zap.Logger
}

// Equip calls the equip hook.
func (b *Behavior) Equip(w *inventory.Weapon) { b.call(HookEquip, w) }

// Unequip calls the unequip hook.
func (b *Behavior) Unequip(w *inventory.Weapon) { b.call(HookUnequip, w) }

// FireBullet calls the fire_bullet hook.
func (b *Behavior) FireBullet(w *inventory.Weapon) { b.call(HookFireBullet, w) }

// FireReleased calls the fire_released hook with dt.
func (b *Behavior) FireReleased(w *inventory.Weapon, dt float64) {
	b.call(HookFireReleased, w, lua.LNumber(dt))
}

// Reloaded calls the reloaded hook with the number of rounds moved.
func (b *Behavior) Reloaded(w *inventory.Weapon, loaded int) {
	b.call(HookReloaded, w, lua.LNumber(loaded))
}

// CanSwitchWeapons calls the can_switch_weapons hook.
//
// Postcondition: returns true when the hook is missing, returns nil or fails;
// otherwise the hook's result under Lua truthiness.
func (b *Behavior) CanSwitchWeapons(w *inventory.Weapon) bool {
	ret, ok := b.call(HookCanSwitchWeapons, w)
	if !ok || ret == lua.LNil {
		return true
	}
	return lua.LVAsBool(ret)
}

// Close releases the VM. Hooks called after Close are no-ops.
func (b *Behavior) Close() {
	if b.L != nil {
		b.L.Close()
		b.L = nil
	}
}

// call invokes hook with a weapon table followed by extra. Lua runtime errors
// and exhausted budgets are logged at Warn level and never propagated.
//
// Postcondition: ok is true iff the hook exists and returned normally.
func (b *Behavior) call(hook string, w *inventory.Weapon, extra ...lua.LValue) (lua.LValue, bool) {
	if b.L == nil {
		return lua.LNil, false
	}
	fn := b.L.GetGlobal(hook)
	if fn.Type() != lua.LTFunction {
		return lua.LNil, false
	}
	args := append([]lua.LValue{weaponTable(b.L, w)}, extra...)
	err := RunLimited(b.L, b.instLimit, func() error {
		return b.L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, args...)
	})
	if err != nil {
		b.logger.Warn("scripting: Lua runtime error",
			zap.String("script", b.script),
			zap.String("hook", hook),
			zap.String("weapon", w.ID()),
			zap.Error(err),
		)
		return lua.LNil, false
	}
	ret := b.L.Get(-1)
	b.L.Pop(1)
	return ret, true
}

// weaponTable snapshots w into a fresh Lua table. Scripts cannot mutate the
// weapon through it.
func weaponTable(L *lua.LState, w *inventory.Weapon) *lua.LTable {
	cfg := w.Config()
	t := L.NewTable()
	t.RawSetString("id", lua.LString(w.ID()))
	t.RawSetString("config_id", lua.LString(cfg.ID))
	t.RawSetString("name", lua.LString(cfg.Name))
	t.RawSetString("category", lua.LString(cfg.Category))
	t.RawSetString("fire_type", lua.LString(cfg.FireType))
	t.RawSetString("clip", lua.LNumber(w.Clip()))
	t.RawSetString("reserve", lua.LNumber(w.Reserve()))
	t.RawSetString("clip_capacity", lua.LNumber(cfg.ClipCapacity))
	t.RawSetString("damage", lua.LNumber(cfg.DamagePerBullet))
	t.RawSetString("burst_fired", lua.LNumber(w.BurstFired()))
	return t
}
