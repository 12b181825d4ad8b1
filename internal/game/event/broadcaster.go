// Package event provides the synchronous observer registry used by weapons
// and players to announce state changes to display consumers.
package event

// Broadcaster delivers values of type T to every registered subscriber.
// The zero value is ready to use.
//
// Broadcaster is not safe for concurrent use; it is owned by the single
// goroutine that drives the emitting weapon or player.
//
// Invariant: every subscriber registered when Emit is called observes the
// value before Emit returns.
type Broadcaster[T any] struct {
	nextID uint64
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Subscription is the handle returned by Subscribe. The zero value is a
// valid, already-cancelled subscription.
type Subscription struct {
	cancel func()
}

// Cancel removes the subscriber. Safe to call multiple times.
//
// Postcondition: the subscriber is not invoked by any later Emit.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Subscribe registers fn and returns a handle that removes it.
//
// Precondition: fn must not be nil.
// Postcondition: fn is invoked on every subsequent Emit until cancelled.
func (b *Broadcaster[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		panic("event: Broadcaster.Subscribe: fn must not be nil")
	}
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber[T]{id: id, fn: fn})
	return Subscription{cancel: func() { b.remove(id) }}
}

// Emit invokes every current subscriber with v in subscription order.
// Subscribers may cancel themselves or others while being invoked; the
// change takes effect from the next Emit.
func (b *Broadcaster[T]) Emit(v T) {
	if len(b.subs) == 0 {
		return
	}
	snapshot := make([]subscriber[T], len(b.subs))
	copy(snapshot, b.subs)
	for _, s := range snapshot {
		s.fn(v)
	}
}

// Len returns the number of registered subscribers.
func (b *Broadcaster[T]) Len() int {
	return len(b.subs)
}

func (b *Broadcaster[T]) remove(id uint64) {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}
