package inputx

// MakeText builds an event carrying text from the user, deriving ancillary
// state from old.
func MakeText[E GenericEvent[E]](text string, old E) (E, bool) {
	return MakeEvent(TextID, text, old)
}

// MapText applies f to the text if e is a text event. It reports false iff
// e holds a different kind.
func MapText[E GenericEvent[E], U any](e E, f func(string) U) (U, bool) {
	return MapEvent(e, TextID, f)
}

// TextOf returns the text if e is a text event.
func TextOf[E GenericEvent[E]](e E) (string, bool) {
	return MapText(e, func(s string) string { return s })
}
