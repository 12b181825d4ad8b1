// Package driver feeds sampled input into a player at a fixed tick rate.
package driver

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cory-johannsen/armory/internal/game/inventory"
	"github.com/cory-johannsen/armory/internal/game/player"
	"github.com/cory-johannsen/armory/internal/observability"
)

// Sample is the input state observed for one tick.
type Sample struct {
	// TriggerDown is the trigger level this tick. Edges are derived by the loop.
	TriggerDown bool
	// SwitchTo requests a weapon switch when non-empty.
	SwitchTo inventory.Slot
	// Reload requests a manual reload of the active weapon.
	Reload bool
	// Quit ends the loop before this tick is applied.
	Quit bool
}

// Input is polled once per tick.
type Input interface {
	Poll() Sample
}

// Loop applies one Sample per tick to a player: switch and reload requests
// first, then the trigger intent with the elapsed time.
//
// Step and Replay are not safe for concurrent use. Stop may be called from
// any goroutine.
type Loop struct {
	player   *player.Player
	input    Input
	interval time.Duration
	logger   *zap.Logger
	tracer   trace.Tracer

	triggerDown bool
	ticks       uint64

	stopOnce sync.Once
	stop     chan struct{}
}

// NewLoop creates a Loop.
//
// Precondition: p and in must be non-nil; interval must be > 0. A nil
// logger or tracer disables that output.
// Postcondition: Returns a Loop that has not ticked.
func NewLoop(p *player.Player, in Input, interval time.Duration, logger *zap.Logger, tracer trace.Tracer) *Loop {
	if p == nil || in == nil {
		panic("driver.NewLoop: player and input must not be nil")
	}
	if interval <= 0 {
		panic("driver.NewLoop: interval must be > 0")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if tracer == nil {
		tracer = observability.NoopTracer()
	}
	return &Loop{
		player:   p,
		input:    in,
		interval: interval,
		logger:   logger,
		tracer:   tracer,
		stop:     make(chan struct{}),
	}
}

// Ticks returns the number of ticks applied so far.
func (l *Loop) Ticks() uint64 { return l.ticks }

// Step polls the input once and applies it with dt seconds of elapsed time.
//
// Postcondition: returns true iff the sample requested quit; nothing is
// applied in that case.
func (l *Loop) Step(ctx context.Context, dt float64) (quit bool) {
	s := l.input.Poll()
	if s.Quit {
		l.logger.Info("quit requested", zap.Uint64("ticks", l.ticks))
		return true
	}

	_, span := l.tracer.Start(ctx, "driver.tick",
		trace.WithAttributes(
			attribute.Int64("tick", int64(l.ticks)),
			attribute.Float64("dt", dt),
		),
	)
	defer span.End()

	if s.SwitchTo != "" {
		if err := l.player.SwitchActiveWeapon(s.SwitchTo); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "switch rejected")
		}
	}
	if s.Reload {
		span.SetAttributes(attribute.Bool("reloaded", l.player.ReloadActive()))
	}

	intent := player.IntentFromLevels(l.triggerDown, s.TriggerDown)
	l.triggerDown = s.TriggerDown
	l.player.Tick(intent, dt)

	if w := l.player.Active(); w != nil {
		span.SetAttributes(
			attribute.String("weapon", w.Name()),
			attribute.Int("clip", w.Clip()),
			attribute.Int("reserve", w.Reserve()),
		)
	}
	span.SetAttributes(attribute.String("intent", intent.String()))
	l.ticks++
	return false
}

// Run ticks every interval using wall-clock elapsed time until the input
// quits, Stop is called, or ctx is cancelled.
//
// Postcondition: returns nil on quit or Stop, ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	last := time.Now()
	l.logger.Info("driver loop started", zap.Duration("interval", l.interval))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if l.Step(ctx, dt) {
				return nil
			}
		}
	}
}

// Replay ticks as fast as possible with a fixed dt until the input quits,
// Stop is called, or ctx is cancelled.
//
// Precondition: dt >= 0.
// Postcondition: returns nil on quit or Stop, ctx.Err() on cancellation.
func (l *Loop) Replay(ctx context.Context, dt float64) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		default:
		}
		if l.Step(ctx, dt) {
			return nil
		}
	}
}

// Stop ends a running Run or Replay. Safe to call multiple times.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
