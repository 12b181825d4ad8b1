package player

import "go.uber.org/zap"

// Intent is the single trigger event delivered to the active weapon in one tick.
type Intent int

const (
	// IntentNone delivers nothing.
	IntentNone Intent = iota
	// IntentPressed is the tick the trigger went down.
	IntentPressed
	// IntentHeld is every later tick the trigger stays down.
	IntentHeld
	// IntentReleased is the tick the trigger came up.
	IntentReleased
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case IntentPressed:
		return "pressed"
	case IntentHeld:
		return "held"
	case IntentReleased:
		return "released"
	default:
		return "none"
	}
}

// ResolveIntent collapses the edge flags observed in one tick into a single
// intent. Press wins over held, held wins over released.
func ResolveIntent(pressed, held, released bool) Intent {
	switch {
	case pressed:
		return IntentPressed
	case held:
		return IntentHeld
	case released:
		return IntentReleased
	default:
		return IntentNone
	}
}

// IntentFromLevels derives the intent from the trigger level on the previous
// and current tick.
func IntentFromLevels(wasDown, isDown bool) Intent {
	return ResolveIntent(!wasDown && isDown, wasDown && isDown, wasDown && !isDown)
}

// Tick forwards intent with elapsed seconds dt to the active weapon. It is a
// no-op when no weapon is active or intent is IntentNone.
func (p *Player) Tick(intent Intent, dt float64) {
	w := p.Active()
	if w == nil {
		return
	}
	switch intent {
	case IntentPressed:
		w.FirePressed(dt)
	case IntentHeld:
		w.FireHeld(dt)
	case IntentReleased:
		w.FireReleased(dt)
	}
}

// ReloadActive reloads the active weapon when it can take rounds.
//
// Postcondition: returns true iff a reload ran.
func (p *Player) ReloadActive() bool {
	w := p.Active()
	if w == nil || !w.CanReload() {
		return false
	}
	w.Reload()
	p.logger.Debug("manual reload", zap.String("weapon", w.Name()))
	return true
}
