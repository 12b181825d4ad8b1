package inventory

import "go.uber.org/zap"

// CanFire reports whether at least one round is loaded.
//
// Postcondition: result == (Clip() > 0).
func (w *Weapon) CanFire() bool {
	return w.clip > 0
}

// CanReload reports whether a reload would move any rounds.
//
// Postcondition: result == (Reserve() > 0 && Clip() < ClipCapacity).
func (w *Weapon) CanReload() bool {
	return w.reserve > 0 && w.clip < w.config().ClipCapacity
}

// Reload moves as many reserve rounds into the clip as fit.
// Both change notifications are emitted even when nothing moved.
//
// Postcondition: Clip()+Reserve() is unchanged; Clip() == ClipCapacity or Reserve() == 0.
func (w *Weapon) Reload() {
	cfg := w.config()
	n := min(w.reserve, cfg.ClipCapacity-w.clip)
	w.clip += n
	w.reserve -= n

	w.logger.Debug("weapon reloaded",
		zap.String("weapon", w.id),
		zap.String("config", cfg.ID),
		zap.Int("loaded", n),
		zap.Int("clip", w.clip),
		zap.Int("reserve", w.reserve),
	)
	w.ClipChanged.Emit(w.clip)
	w.ReserveChanged.Emit(w.reserve)
	if h, ok := w.behavior.(ReloadHook); ok {
		h.Reloaded(w, n)
	}
}

// AddReserveAmmo adds |n| rounds to the reserve, saturating at MaxReserveAmmo.
//
// Postcondition: 0 <= Reserve() <= MaxReserveAmmo; ReserveChanged emitted.
func (w *Weapon) AddReserveAmmo(n int) {
	maxReserve := w.config().MaxReserveAmmo
	if n < 0 {
		n = -n
	}
	// n is still negative only for math.MinInt; treat it as unbounded.
	if n < 0 || n > maxReserve-w.reserve {
		w.reserve = maxReserve
	} else {
		w.reserve += n
	}
	w.ReserveChanged.Emit(w.reserve)
}

// consumeFromClip removes n rounds from the clip, flooring at zero.
func (w *Weapon) consumeFromClip(n int) {
	w.clip = max(w.clip-n, 0)
	w.ClipChanged.Emit(w.clip)
}
