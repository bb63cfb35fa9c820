package inputx

// MakePress builds an event reporting that button was pressed, deriving
// ancillary state from old.
func MakePress[E GenericEvent[E]](button Button, old E) (E, bool) {
	return MakeEvent(PressID, button, old)
}

// MapPress applies f to the pressed button if e is a press event. It reports
// false iff e holds a different kind.
func MapPress[E GenericEvent[E], U any](e E, f func(Button) U) (U, bool) {
	return MapEvent(e, PressID, f)
}

// PressOf returns the pressed button if e is a press event.
func PressOf[E GenericEvent[E]](e E) (Button, bool) {
	return MapPress(e, func(b Button) Button { return b })
}
