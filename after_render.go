package inputx

// AfterRenderArgs marks the completion of a render pass. It carries no data
// yet; the struct exists so the kind follows the same payload contract as
// every other.
type AfterRenderArgs struct{}

// MakeAfterRender builds an event announcing that a render pass finished,
// deriving ancillary state from old.
func MakeAfterRender[E GenericEvent[E]](args AfterRenderArgs, old E) (E, bool) {
	return MakeEvent(AfterRenderID, args, old)
}

// MapAfterRender applies f to the after-render arguments if e is an
// after-render event. It reports false iff e holds a different kind.
func MapAfterRender[E GenericEvent[E], U any](e E, f func(AfterRenderArgs) U) (U, bool) {
	return MapEvent(e, AfterRenderID, f)
}

// AfterRenderOf returns the after-render arguments if e is an after-render
// event.
func AfterRenderOf[E GenericEvent[E]](e E) (AfterRenderArgs, bool) {
	return MapAfterRender(e, func(a AfterRenderArgs) AfterRenderArgs { return a })
}
