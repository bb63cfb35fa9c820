package inputx

// MakeCursor builds an event reporting that the cursor entered (true) or
// left (false) the window area, deriving ancillary state from old.
func MakeCursor[E GenericEvent[E]](entered bool, old E) (E, bool) {
	return MakeEvent(CursorID, entered, old)
}

// MapCursor applies f to the enter/leave flag if e is a cursor event. It
// reports false iff e holds a different kind.
func MapCursor[E GenericEvent[E], U any](e E, f func(entered bool) U) (U, bool) {
	return MapEvent(e, CursorID, f)
}

// CursorOf returns the enter/leave flag if e is a cursor event.
func CursorOf[E GenericEvent[E]](e E) (bool, bool) {
	return MapCursor(e, func(entered bool) bool { return entered })
}
