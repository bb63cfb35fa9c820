package inputx

import "fmt"

// GenericEvent is the capability a concrete event type implements once to
// gain every typed accessor in this package. The type parameter is the
// implementing type itself, e.g. Input implements GenericEvent[Input].
//
// The contract between EventID and WithArgs is the one convention the type
// system does not check: whatever kind EventID reports, WithArgs must present
// the payload type that kind promises (see the Make* constructors for the
// per-kind payload types). An implementation that breaks this causes the
// typed accessors to panic.
type GenericEvent[E any] interface {
	// EventID reports the kind of the currently active variant.
	EventID() EventID

	// FromArgs builds a new event of kind id carrying args, copying forward
	// any ancillary state the receiver holds beyond its payload. It reports
	// false when the concrete type cannot represent the requested kind at
	// all; it must not fail for kinds the type does represent.
	FromArgs(id EventID, args any) (E, bool)

	// WithArgs grants visit scoped, read-only access to the active payload.
	// The payload is only valid for the duration of the call and must not
	// be retained.
	WithArgs(visit func(args any))
}

// MakeEvent builds a new event of kind id carrying args, deriving ancillary
// state from old. It is the generic constructor the per-kind Make* functions
// are built on; accessor authors for kinds defined outside this package use
// it directly.
func MakeEvent[E GenericEvent[E]](id EventID, args any, old E) (E, bool) {
	return old.FromArgs(id, args)
}

// MapEvent applies f to the payload of e if e holds kind id, asserting the
// payload to type P. It reports false, without touching the payload, when e
// holds a different kind. It panics if e's tag is id but the payload is not
// a P; that combination means e's GenericEvent implementation is internally
// inconsistent, which is a bug to fix, not a condition to handle.
func MapEvent[E GenericEvent[E], P, U any](e E, id EventID, f func(P) U) (U, bool) {
	var out U
	if e.EventID() != id {
		return out, false
	}
	e.WithArgs(func(args any) {
		out = f(payloadAs[P](id, args))
	})
	return out, true
}

// payloadAs recovers the typed payload behind the erased args. The caller
// has already matched the tag, so a type mismatch here is an invariant
// violation in the concrete event type and unrecoverable.
func payloadAs[P any](id EventID, args any) P {
	p, ok := args.(P)
	if !ok {
		panic(fmt.Sprintf("inputx: event %q carries payload %T, want %T", id, args, p))
	}
	return p
}
