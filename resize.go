package inputx

// MakeResize builds an event reporting that the window was resized to
// (width, height) in pixels, deriving ancillary state from old.
func MakeResize[E GenericEvent[E]](width, height uint32, old E) (E, bool) {
	return MakeEvent(ResizeID, [2]uint32{width, height}, old)
}

// MapResize applies f to the new window size if e is a resize event. It
// reports false iff e holds a different kind.
func MapResize[E GenericEvent[E], U any](e E, f func(width, height uint32) U) (U, bool) {
	return MapEvent(e, ResizeID, func(wh [2]uint32) U {
		return f(wh[0], wh[1])
	})
}

// ResizeOf returns the new (width, height) if e is a resize event.
func ResizeOf[E GenericEvent[E]](e E) ([2]uint32, bool) {
	return MapResize(e, func(w, h uint32) [2]uint32 {
		return [2]uint32{w, h}
	})
}
