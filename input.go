package inputx

import "fmt"

// ButtonKind discriminates the variants of Button.
type ButtonKind uint8

const (
	ButtonKeyboard ButtonKind = iota
	ButtonMouse
	ButtonController
)

// Button models each kind of physical control a backend might report.
// Construct values through Key.AsButton, MouseButton.AsButton and
// ControllerButton.AsButton so that only the field selected by Kind is set;
// two Buttons built that way are equal iff they denote the same control.
type Button struct {
	Kind       ButtonKind       `json:"kind" yaml:"kind"`
	Key        Key              `json:"key,omitempty" yaml:"key,omitempty"`
	Mouse      MouseButton      `json:"mouse,omitempty" yaml:"mouse,omitempty"`
	Controller ControllerButton `json:"controller" yaml:"controller"`
}

// MotionKind discriminates the variants of Motion.
type MotionKind uint8

const (
	MotionMouseCursor MotionKind = iota
	MotionMouseRelative
	MotionMouseScroll
	MotionControllerAxis
	MotionTouch
)

// Motion models each kind of continuous input signal, from mouse pointers to
// joysticks. Construct values through the *Motion constructors so that only
// the fields selected by Kind are set.
type Motion struct {
	Kind MotionKind `json:"kind" yaml:"kind"`
	// X and Y carry the coordinates for the cursor, relative and scroll
	// variants.
	X     float64            `json:"x,omitempty" yaml:"x,omitempty"`
	Y     float64            `json:"y,omitempty" yaml:"y,omitempty"`
	Axis  ControllerAxisArgs `json:"axis" yaml:"axis"`
	Touch TouchArgs          `json:"touch" yaml:"touch"`
}

// MouseCursorMotion gives the mouse position (x, y) in window coordinates.
func MouseCursorMotion(x, y float64) Motion {
	return Motion{Kind: MotionMouseCursor, X: x, Y: y}
}

// MouseRelativeMotion gives mouse motion relative to the previous cursor
// position.
func MouseRelativeMotion(x, y float64) Motion {
	return Motion{Kind: MotionMouseRelative, X: x, Y: y}
}

// MouseScrollMotion gives scroll motion in the x and y directions.
func MouseScrollMotion(dx, dy float64) Motion {
	return Motion{Kind: MotionMouseScroll, X: dx, Y: dy}
}

// ControllerAxisMotion wraps a controller axis movement in the Motion sum
// type.
func ControllerAxisMotion(args ControllerAxisArgs) Motion {
	return Motion{Kind: MotionControllerAxis, Axis: args}
}

// TouchMotion wraps a touch update in the Motion sum type.
func TouchMotion(args TouchArgs) Motion {
	return Motion{Kind: MotionTouch, Touch: args}
}

// Input is the reference concrete event type for the input kinds. Most
// backends produce Input values instead of defining their own event type.
//
// An Input is immutable once constructed and compares by structural value
// with ==. The active kind is held directly as the variant discriminant; the
// payload is stored in the exact shape the kind's accessors contract, so the
// tag/payload invariant of GenericEvent holds by construction.
type Input struct {
	kind EventID
	args any
}

// PressInput reports that the user pressed a button.
func PressInput(b Button) Input {
	return Input{kind: PressID, args: b}
}

// ReleaseInput reports that the user released a button.
func ReleaseInput(b Button) Input {
	return Input{kind: ReleaseID, args: b}
}

// MoveInput reports that the mouse cursor, a joystick or a touch point
// moved. The event kind is derived from the motion's variant.
func MoveInput(m Motion) Input {
	switch m.Kind {
	case MotionMouseCursor:
		return Input{kind: MouseCursorID, args: [2]float64{m.X, m.Y}}
	case MotionMouseRelative:
		return Input{kind: MouseRelativeID, args: [2]float64{m.X, m.Y}}
	case MotionMouseScroll:
		return Input{kind: MouseScrollID, args: [2]float64{m.X, m.Y}}
	case MotionControllerAxis:
		return Input{kind: ControllerAxisID, args: m.Axis}
	case MotionTouch:
		return Input{kind: TouchID, args: m.Touch}
	default:
		panic(fmt.Sprintf("inputx: unknown motion kind %d", m.Kind))
	}
}

// TextInput reports text from the user. This is usually full unicode text
// rather than individual key presses; backends that cannot report key
// presses may only deliver text.
func TextInput(text string) Input {
	return Input{kind: TextID, args: text}
}

// ResizeInput reports that the window was resized to (width, height) in
// pixels.
func ResizeInput(width, height uint32) Input {
	return Input{kind: ResizeID, args: [2]uint32{width, height}}
}

// FocusInput reports that the window gained (true) or lost (false) focus.
func FocusInput(focused bool) Input {
	return Input{kind: FocusID, args: focused}
}

// CursorInput reports that the cursor entered (true) or left (false) the
// window area.
func CursorInput(entered bool) Input {
	return Input{kind: CursorID, args: entered}
}

// EventID reports the kind of the active variant.
func (e Input) EventID() EventID {
	return e.kind
}

// FromArgs builds a new Input of kind id carrying args. Input holds no
// ancillary state, so the receiver contributes nothing beyond its type. It
// reports false for the render-family kinds and for kinds defined outside
// this package, which Input cannot represent; see Event for a type that
// represents every kind.
func (Input) FromArgs(id EventID, args any) (Input, bool) {
	switch id {
	case PressID:
		return PressInput(payloadAs[Button](id, args)), true
	case ReleaseID:
		return ReleaseInput(payloadAs[Button](id, args)), true
	case MouseCursorID, MouseRelativeID, MouseScrollID:
		return Input{kind: id, args: payloadAs[[2]float64](id, args)}, true
	case ControllerAxisID:
		return Input{kind: id, args: payloadAs[ControllerAxisArgs](id, args)}, true
	case TouchID:
		return Input{kind: id, args: payloadAs[TouchArgs](id, args)}, true
	case TextID:
		return TextInput(payloadAs[string](id, args)), true
	case ResizeID:
		return Input{kind: id, args: payloadAs[[2]uint32](id, args)}, true
	case FocusID, CursorID:
		return Input{kind: id, args: payloadAs[bool](id, args)}, true
	default:
		return Input{}, false
	}
}

// WithArgs grants visit scoped access to the active payload.
func (e Input) WithArgs(visit func(args any)) {
	visit(e.args)
}

// Motion returns the motion sum if e holds one of the motion kinds.
func (e Input) Motion() (Motion, bool) {
	switch e.kind {
	case MouseCursorID:
		xy := e.args.([2]float64)
		return MouseCursorMotion(xy[0], xy[1]), true
	case MouseRelativeID:
		xy := e.args.([2]float64)
		return MouseRelativeMotion(xy[0], xy[1]), true
	case MouseScrollID:
		xy := e.args.([2]float64)
		return MouseScrollMotion(xy[0], xy[1]), true
	case ControllerAxisID:
		return ControllerAxisMotion(e.args.(ControllerAxisArgs)), true
	case TouchID:
		return TouchMotion(e.args.(TouchArgs)), true
	default:
		return Motion{}, false
	}
}

// String renders the input for diagnostics.
func (e Input) String() string {
	if e.kind == "" {
		return "Input()"
	}
	return fmt.Sprintf("Input(%s %v)", e.kind, e.args)
}
