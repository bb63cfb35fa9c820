// Package testutil provides helpers for testing code against multiple
// concrete event types. Traced stands in for a host application's own event
// representation: it satisfies the same capability as the built-in types but
// carries extra state the built-ins do not have.
package testutil

import "github.com/uilab/inputx"

// Traced wraps an event with the identity of the backend that produced it.
// The source is ancillary state beyond the payload, so every typed
// constructor must carry it forward unchanged; tests rely on that to check
// the context-preservation contract.
type Traced struct {
	Source string
	Event  inputx.Event
}

// EventID reports the kind of the wrapped event.
func (t Traced) EventID() inputx.EventID {
	return t.Event.EventID()
}

// FromArgs builds a new Traced event of kind id carrying args, keeping the
// receiver's source.
func (t Traced) FromArgs(id inputx.EventID, args any) (Traced, bool) {
	ev, ok := t.Event.FromArgs(id, args)
	if !ok {
		return Traced{}, false
	}
	return Traced{Source: t.Source, Event: ev}, true
}

// WithArgs grants visit scoped access to the wrapped event's payload.
func (t Traced) WithArgs(visit func(args any)) {
	t.Event.WithArgs(visit)
}
