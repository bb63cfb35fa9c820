package inputx

// Touch describes the phase of a touch sequence.
type Touch uint8

const (
	TouchStart Touch = iota
	TouchMove
	TouchEnd
	// TouchCancel is reported when the backend aborts the sequence, e.g.
	// because the window lost focus mid-gesture.
	TouchCancel
)

// TouchArgs describes one touch point update.
type TouchArgs struct {
	// Device distinguishes touch surfaces when several are attached.
	Device int64 `json:"device" yaml:"device"`
	// ID follows one finger through a start/move/end sequence.
	ID int64 `json:"id" yaml:"id"`
	// X and Y give the touch position in window coordinates.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	// Pressure is backend-defined, normally in [0, 1].
	Pressure float64 `json:"pressure" yaml:"pressure"`
	// Touch is the phase of the sequence this update belongs to.
	Touch Touch `json:"touch" yaml:"touch"`
}

// MakeTouch builds an event carrying a touch update, deriving ancillary
// state from old.
func MakeTouch[E GenericEvent[E]](args TouchArgs, old E) (E, bool) {
	return MakeEvent(TouchID, args, old)
}

// MapTouch applies f to the touch arguments if e is a touch event. It
// reports false iff e holds a different kind.
func MapTouch[E GenericEvent[E], U any](e E, f func(TouchArgs) U) (U, bool) {
	return MapEvent(e, TouchID, f)
}

// TouchOf returns the touch arguments if e is a touch event.
func TouchOf[E GenericEvent[E]](e E) (TouchArgs, bool) {
	return MapTouch(e, func(a TouchArgs) TouchArgs { return a })
}
