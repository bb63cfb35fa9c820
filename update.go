package inputx

// UpdateArgs describes one update step of a fixed time-step loop.
type UpdateArgs struct {
	// DT is the time step in seconds.
	DT float64 `json:"dt" yaml:"dt"`
}

// MakeUpdate builds an event announcing an update step, deriving ancillary
// state from old.
func MakeUpdate[E GenericEvent[E]](args UpdateArgs, old E) (E, bool) {
	return MakeEvent(UpdateID, args, old)
}

// MapUpdate applies f to the update arguments if e is an update event. It
// reports false iff e holds a different kind.
func MapUpdate[E GenericEvent[E], U any](e E, f func(UpdateArgs) U) (U, bool) {
	return MapEvent(e, UpdateID, f)
}

// UpdateOf returns the update arguments if e is an update event.
func UpdateOf[E GenericEvent[E]](e E) (UpdateArgs, bool) {
	return MapUpdate(e, func(a UpdateArgs) UpdateArgs { return a })
}
