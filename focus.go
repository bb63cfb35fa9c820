package inputx

// MakeFocus builds an event reporting that the window gained (true) or lost
// (false) focus, deriving ancillary state from old.
func MakeFocus[E GenericEvent[E]](focused bool, old E) (E, bool) {
	return MakeEvent(FocusID, focused, old)
}

// MapFocus applies f to the focus flag if e is a focus event. It reports
// false iff e holds a different kind.
func MapFocus[E GenericEvent[E], U any](e E, f func(focused bool) U) (U, bool) {
	return MapEvent(e, FocusID, f)
}

// FocusOf returns the focus flag if e is a focus event.
func FocusOf[E GenericEvent[E]](e E) (bool, bool) {
	return MapFocus(e, func(f bool) bool { return f })
}
