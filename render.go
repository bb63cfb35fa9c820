package inputx

// RenderArgs describes one render pass.
type RenderArgs struct {
	// ExtDT is the estimated time until the frame is shown, in seconds.
	ExtDT float64 `json:"ext_dt" yaml:"ext_dt"`
	// Width and Height give the window size in points.
	Width  uint32 `json:"width" yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
	// DrawWidth and DrawHeight give the drawable size in pixels, which
	// differs from the window size on high-DPI displays.
	DrawWidth  uint32 `json:"draw_width" yaml:"draw_width"`
	DrawHeight uint32 `json:"draw_height" yaml:"draw_height"`
}

// MakeRender builds an event announcing a render pass, deriving ancillary
// state from old.
func MakeRender[E GenericEvent[E]](args RenderArgs, old E) (E, bool) {
	return MakeEvent(RenderID, args, old)
}

// MapRender applies f to the render arguments if e is a render event. It
// reports false iff e holds a different kind.
func MapRender[E GenericEvent[E], U any](e E, f func(RenderArgs) U) (U, bool) {
	return MapEvent(e, RenderID, f)
}

// RenderOf returns the render arguments if e is a render event.
func RenderOf[E GenericEvent[E]](e E) (RenderArgs, bool) {
	return MapRender(e, func(a RenderArgs) RenderArgs { return a })
}
