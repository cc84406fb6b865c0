// Package event provides the typed publish/subscribe bus shared by the
// carousel components.
//
// Each [Topic] fixes its payload type at declaration, so listeners receive
// concrete values instead of untyped argument lists:
//
//	var Moved = event.NewTopic[MoveEvent]("moved")
//
//	scope := bus.Scope("pagination")
//	event.On(scope, Moved, func(e MoveEvent) { ... })
//	event.Emit(bus, Moved, MoveEvent{Index: 2, Prev: 1, Dest: 2})
//	scope.Close() // removes every listener the scope registered
//
// # Reentrancy
//
// Handlers run on the emitting goroutine, outside the bus lock. A handler may
// emit further events or close scopes; listeners removed during a dispatch
// are skipped for the rest of it.
package event
