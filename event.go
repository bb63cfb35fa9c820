package inputx

import "fmt"

// Event is the richer concrete event type used by event loops. It covers
// every Input kind, adds the render/after-render/update/idle kinds, and
// carries kinds defined outside this package as custom events, so its
// FromArgs never fails.
//
// Events compare with == as long as their payload is comparable; every
// payload defined by this package is. A custom kind with a non-comparable
// payload makes == panic, as for any Go interface value.
type Event struct {
	kind EventID
	args any
}

// InputEvent wraps an input value as an Event. The wrapper holds the same
// kind and payload, so accessors answer identically for both.
func InputEvent(in Input) Event {
	return Event{kind: in.kind, args: in.args}
}

// RenderEvent announces a render pass.
func RenderEvent(args RenderArgs) Event {
	return Event{kind: RenderID, args: args}
}

// AfterRenderEvent announces that a render pass finished.
func AfterRenderEvent(args AfterRenderArgs) Event {
	return Event{kind: AfterRenderID, args: args}
}

// UpdateEvent announces an update step.
func UpdateEvent(args UpdateArgs) Event {
	return Event{kind: UpdateID, args: args}
}

// IdleEvent announces idle time.
func IdleEvent(args IdleArgs) Event {
	return Event{kind: IdleID, args: args}
}

// CustomEvent carries a kind defined outside this package. The caller owns
// the contract between id and the payload type; accessors written for id
// via MakeEvent/MapEvent must assert the same type stored here.
func CustomEvent(id EventID, args any) Event {
	return Event{kind: id, args: args}
}

// Input returns the wrapped input value if e holds one of the input kinds.
func (e Event) Input() (Input, bool) {
	if in, ok := (Input{}).FromArgs(e.kind, e.args); ok {
		return in, true
	}
	return Input{}, false
}

// EventID reports the kind of the active variant.
func (e Event) EventID() EventID {
	return e.kind
}

// FromArgs builds a new Event of kind id carrying args. Event holds no
// ancillary state beyond the payload, so the receiver contributes nothing
// but its type. Input kinds are validated through Input's own construction;
// unknown kinds are stored as custom events, so FromArgs never reports
// false.
func (Event) FromArgs(id EventID, args any) (Event, bool) {
	if in, ok := (Input{}).FromArgs(id, args); ok {
		return InputEvent(in), true
	}
	switch id {
	case RenderID:
		return RenderEvent(payloadAs[RenderArgs](id, args)), true
	case AfterRenderID:
		return AfterRenderEvent(payloadAs[AfterRenderArgs](id, args)), true
	case UpdateID:
		return UpdateEvent(payloadAs[UpdateArgs](id, args)), true
	case IdleID:
		return IdleEvent(payloadAs[IdleArgs](id, args)), true
	default:
		return CustomEvent(id, args), true
	}
}

// WithArgs grants visit scoped access to the active payload.
func (e Event) WithArgs(visit func(args any)) {
	visit(e.args)
}

// String renders the event for diagnostics.
func (e Event) String() string {
	if e.kind == "" {
		return "Event()"
	}
	return fmt.Sprintf("Event(%s %v)", e.kind, e.args)
}
