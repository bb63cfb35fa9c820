package inputx

// ControllerButton identifies one button on one controller.
type ControllerButton struct {
	// ID distinguishes controllers when several are attached.
	ID int32 `json:"id" yaml:"id"`
	// Button is the backend-assigned button number on that controller.
	Button uint8 `json:"button" yaml:"button"`
}

// AsButton wraps the controller button in the Button sum type.
func (b ControllerButton) AsButton() Button {
	return Button{Kind: ButtonController, Controller: b}
}

// ControllerAxisArgs describes one movement of a controller axis or analog
// stick.
type ControllerAxisArgs struct {
	// ID distinguishes controllers when several are attached.
	ID int32 `json:"id" yaml:"id"`
	// Axis is the backend-assigned axis number on that controller.
	Axis uint8 `json:"axis" yaml:"axis"`
	// Position is the axis position in [-1, 1].
	Position float64 `json:"position" yaml:"position"`
}

// MakeControllerAxis builds an event carrying a controller axis movement,
// deriving ancillary state from old.
func MakeControllerAxis[E GenericEvent[E]](args ControllerAxisArgs, old E) (E, bool) {
	return MakeEvent(ControllerAxisID, args, old)
}

// MapControllerAxis applies f to the axis arguments if e is a controller
// axis event. It reports false iff e holds a different kind.
func MapControllerAxis[E GenericEvent[E], U any](e E, f func(ControllerAxisArgs) U) (U, bool) {
	return MapEvent(e, ControllerAxisID, f)
}

// ControllerAxisOf returns the axis arguments if e is a controller axis
// event.
func ControllerAxisOf[E GenericEvent[E]](e E) (ControllerAxisArgs, bool) {
	return MapControllerAxis(e, func(a ControllerAxisArgs) ControllerAxisArgs { return a })
}
