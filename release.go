package inputx

// MakeRelease builds an event reporting that button was released, deriving
// ancillary state from old.
func MakeRelease[E GenericEvent[E]](button Button, old E) (E, bool) {
	return MakeEvent(ReleaseID, button, old)
}

// MapRelease applies f to the released button if e is a release event. It
// reports false iff e holds a different kind.
func MapRelease[E GenericEvent[E], U any](e E, f func(Button) U) (U, bool) {
	return MapEvent(e, ReleaseID, f)
}

// ReleaseOf returns the released button if e is a release event.
func ReleaseOf[E GenericEvent[E]](e E) (Button, bool) {
	return MapRelease(e, func(b Button) Button { return b })
}
