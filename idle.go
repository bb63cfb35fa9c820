package inputx

// IdleArgs describes time spent waiting with no events to process.
type IdleArgs struct {
	// DT is the idle time in seconds.
	DT float64 `json:"dt" yaml:"dt"`
}

// MakeIdle builds an event announcing idle time, deriving ancillary state
// from old.
func MakeIdle[E GenericEvent[E]](args IdleArgs, old E) (E, bool) {
	return MakeEvent(IdleID, args, old)
}

// MapIdle applies f to the idle arguments if e is an idle event. It reports
// false iff e holds a different kind.
func MapIdle[E GenericEvent[E], U any](e E, f func(IdleArgs) U) (U, bool) {
	return MapEvent(e, IdleID, f)
}

// IdleOf returns the idle arguments if e is an idle event.
func IdleOf[E GenericEvent[E]](e E) (IdleArgs, bool) {
	return MapIdle(e, func(a IdleArgs) IdleArgs { return a })
}
