package inventory

// FirePressed starts a new trigger cycle: the hold timer and burst counter
// reset, then one firing step runs.
//
// Postcondition: BurstFired() counts only rounds fired by this step.
func (w *Weapon) FirePressed(dt float64) {
	w.fireTime = 0
	w.burstFired = 0
	w.pressTick = true
	w.firing()
}

// FireHeld accumulates dt of hold time, then runs one firing step.
// Negative dt is treated as zero.
func (w *Weapon) FireHeld(dt float64) {
	if dt > 0 {
		w.fireTime += dt
	}
	w.firing()
}

// FireReleased ends the hold. It has no effect on counters; behaviors
// implementing ReleaseHook are notified.
func (w *Weapon) FireReleased(dt float64) {
	w.config()
	if h, ok := w.behavior.(ReleaseHook); ok {
		h.FireReleased(w, dt)
	}
}

// firing runs one step of the fire-type state machine.
//
// An empty clip triggers a reload when reserve allows and never fires on the
// same step. Single fires only on the press step. Automatic fires on the press
// step and whenever the accumulated hold exceeds FirePeriod, restarting the
// timer without carrying the excess. SemiAutomatic follows the automatic rule
// until BurstLength rounds have left in the current press cycle.
func (w *Weapon) firing() {
	cfg := w.config()
	press := w.pressTick
	w.pressTick = false

	if !w.CanFire() {
		if w.CanReload() {
			w.Reload()
		}
		return
	}

	switch cfg.FireType {
	case FireTypeSingle:
		if press {
			w.fireBullet()
		}
	case FireTypeAutomatic, FireTypeSemiAutomatic:
		if cfg.FireType == FireTypeSemiAutomatic && w.burstFired >= cfg.BurstLength {
			return
		}
		if press || w.fireTime > cfg.FirePeriod() {
			w.fireTime = 0
			w.fireBullet()
		}
	}
}

func (w *Weapon) fireBullet() {
	w.behavior.FireBullet(w)
	w.consumeFromClip(1)
	w.burstFired++
}
