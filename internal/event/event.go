package event

import (
	"errors"
	"sync"
)

// ErrBusClosed is returned when subscribing to a bus that has been destroyed.
var ErrBusClosed = errors.New("event bus is closed")

// Topic names an event and fixes the type of its payload.
type Topic[P any] struct {
	name string
}

// NewTopic declares a topic. Topics with the same name share listeners, so
// declare each name once.
func NewTopic[P any](name string) Topic[P] {
	return Topic[P]{name: name}
}

// Name returns the wire name of the topic.
func (t Topic[P]) Name() string {
	return t.name
}

// None is the payload of topics that carry no data.
type None struct{}

type listener struct {
	id    uint64
	scope *Scope
	fn    func(any)
}

// Bus dispatches payloads to listeners registered per topic name.
//
// Emit never holds the lock while running handlers, so a handler may emit,
// subscribe or close scopes without deadlocking.
type Bus struct {
	mu        sync.Mutex
	listeners map[string][]listener
	wildcard  []listener
	nextID    uint64
	closed    bool
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{listeners: make(map[string][]listener)}
}

// Scope groups listeners owned by one component so they can be removed together.
type Scope struct {
	bus  *Bus
	name string
}

// Scope returns a listener group. The name is informational.
func (b *Bus) Scope(name string) *Scope {
	return &Scope{bus: b, name: name}
}

// Name returns the scope label.
func (s *Scope) Name() string {
	return s.name
}

// Bus returns the bus the scope registers on.
func (s *Scope) Bus() *Bus {
	return s.bus
}

// Close removes every listener registered through the scope.
func (s *Scope) Close() {
	b := s.bus
	b.mu.Lock()
	defer b.mu.Unlock()
	for name, list := range b.listeners {
		b.listeners[name] = without(list, func(l listener) bool { return l.scope == s })
	}
	b.wildcard = without(b.wildcard, func(l listener) bool { return l.scope == s })
}

// On registers fn for topic t within scope s.
func On[P any](s *Scope, t Topic[P], fn func(P)) error {
	return s.bus.add(t.name, s, func(v any) {
		p, _ := v.(P)
		fn(p)
	})
}

// OnAny registers fn for every topic. Wildcard listeners run after the
// topic's own listeners.
func OnAny(s *Scope, fn func(name string, payload any)) error {
	b := s.bus
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	b.nextID++
	id := b.nextID
	b.wildcard = append(b.wildcard, listener{id: id, scope: s, fn: func(v any) {
		e := v.(wildcardEvent)
		fn(e.name, e.payload)
	}})
	return nil
}

// Off removes the listeners of scope s for topic t.
func Off[P any](s *Scope, t Topic[P]) {
	b := s.bus
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[t.name] = without(b.listeners[t.name], func(l listener) bool { return l.scope == s })
}

// Emit delivers payload to the listeners of t in registration order.
// Emitting on a closed bus does nothing.
func Emit[P any](b *Bus, t Topic[P], payload P) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	list := append([]listener(nil), b.listeners[t.name]...)
	wild := append([]listener(nil), b.wildcard...)
	b.mu.Unlock()

	for _, l := range list {
		if b.alive(t.name, l.id) {
			l.fn(payload)
		}
	}
	for _, l := range wild {
		l.fn(wildcardEvent{name: t.name, payload: payload})
	}
}

// Close drops every listener; later subscriptions fail and emits are ignored.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.listeners = make(map[string][]listener)
	b.wildcard = nil
}

// Closed reports whether Close has been called.
func (b *Bus) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

type wildcardEvent struct {
	name    string
	payload any
}

func (b *Bus) add(name string, s *Scope, fn func(any)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	b.nextID++
	b.listeners[name] = append(b.listeners[name], listener{id: b.nextID, scope: s, fn: fn})
	return nil
}

// alive reports whether a listener captured for dispatch is still registered.
// A handler that closes another scope mid-dispatch must stop its delivery.
func (b *Bus) alive(name string, id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, l := range b.listeners[name] {
		if l.id == id {
			return true
		}
	}
	return false
}

func without(list []listener, drop func(listener) bool) []listener {
	kept := list[:0:0]
	for _, l := range list {
		if !drop(l) {
			kept = append(kept, l)
		}
	}
	return kept
}
