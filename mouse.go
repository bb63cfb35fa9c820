package inputx

// MouseButton represents a mouse button press.
type MouseButton uint8

const (
	// MouseUnknown is reported for buttons the backend cannot identify.
	MouseUnknown MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
	// MouseX1 is extra mouse button number 1.
	MouseX1
	// MouseX2 is extra mouse button number 2.
	MouseX2
	MouseButton6
	MouseButton7
	MouseButton8
)

// MouseButtonFromIndex converts a backend button index into a MouseButton.
// Indices outside the known range map to MouseUnknown rather than failing,
// since backends are free to report buttons this package has no name for.
func MouseButtonFromIndex(n uint32) MouseButton {
	if n > uint32(MouseButton8) {
		return MouseUnknown
	}
	return MouseButton(n)
}

// Index converts the button back into its backend index.
func (b MouseButton) Index() uint32 {
	return uint32(b)
}

// AsButton wraps the mouse button in the Button sum type.
func (b MouseButton) AsButton() Button {
	return Button{Kind: ButtonMouse, Mouse: b}
}

// MakeMouseCursor builds an event giving the mouse cursor position (x, y) in
// window coordinates, deriving ancillary state from old.
func MakeMouseCursor[E GenericEvent[E]](x, y float64, old E) (E, bool) {
	return MakeEvent(MouseCursorID, [2]float64{x, y}, old)
}

// MapMouseCursor applies f to the cursor coordinates if e is a mouse cursor
// event. It reports false iff e holds a different kind.
func MapMouseCursor[E GenericEvent[E], U any](e E, f func(x, y float64) U) (U, bool) {
	return MapEvent(e, MouseCursorID, func(xy [2]float64) U {
		return f(xy[0], xy[1])
	})
}

// MouseCursorOf returns the cursor (x, y) coordinates if e is a mouse cursor
// event.
func MouseCursorOf[E GenericEvent[E]](e E) ([2]float64, bool) {
	return MapMouseCursor(e, func(x, y float64) [2]float64 {
		return [2]float64{x, y}
	})
}

// MakeMouseRelative builds an event giving mouse motion (x, y) relative to
// the previous cursor position, deriving ancillary state from old.
func MakeMouseRelative[E GenericEvent[E]](x, y float64, old E) (E, bool) {
	return MakeEvent(MouseRelativeID, [2]float64{x, y}, old)
}

// MapMouseRelative applies f to the relative motion if e is a mouse relative
// event. It reports false iff e holds a different kind.
func MapMouseRelative[E GenericEvent[E], U any](e E, f func(x, y float64) U) (U, bool) {
	return MapEvent(e, MouseRelativeID, func(xy [2]float64) U {
		return f(xy[0], xy[1])
	})
}

// MouseRelativeOf returns the relative (x, y) motion if e is a mouse
// relative event.
func MouseRelativeOf[E GenericEvent[E]](e E) ([2]float64, bool) {
	return MapMouseRelative(e, func(x, y float64) [2]float64 {
		return [2]float64{x, y}
	})
}

// MakeMouseScroll builds an event giving scroll motion in the x and y
// directions, deriving ancillary state from old. Most mice only scroll in y;
// touch pads and ball mice scroll in both. Units are backend-defined.
func MakeMouseScroll[E GenericEvent[E]](dx, dy float64, old E) (E, bool) {
	return MakeEvent(MouseScrollID, [2]float64{dx, dy}, old)
}

// MapMouseScroll applies f to the scroll deltas if e is a mouse scroll
// event. It reports false iff e holds a different kind.
func MapMouseScroll[E GenericEvent[E], U any](e E, f func(dx, dy float64) U) (U, bool) {
	return MapEvent(e, MouseScrollID, func(xy [2]float64) U {
		return f(xy[0], xy[1])
	})
}

// MouseScrollOf returns the scroll (dx, dy) deltas if e is a mouse scroll
// event.
func MouseScrollOf[E GenericEvent[E]](e E) ([2]float64, bool) {
	return MapMouseScroll(e, func(dx, dy float64) [2]float64 {
		return [2]float64{dx, dy}
	})
}
