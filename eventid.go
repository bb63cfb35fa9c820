package inputx

// EventID identifies one kind of event arguments provided by the typed
// accessor functions. Two EventIDs are equal iff they denote the same
// semantic kind. IDs are declared as constants and never constructed at
// runtime; packages defining their own kinds declare their own constants.
// The "inputx/" prefix is reserved for the kinds shipped with this package.
type EventID string

const (
	AfterRenderID    EventID = "inputx/after_render"
	ControllerAxisID EventID = "inputx/controller_axis"
	CursorID         EventID = "inputx/cursor"
	FocusID          EventID = "inputx/focus"
	IdleID           EventID = "inputx/idle"
	MouseScrollID    EventID = "inputx/mouse_scroll"
	MouseRelativeID  EventID = "inputx/mouse_relative"
	MouseCursorID    EventID = "inputx/mouse_cursor"
	PressID          EventID = "inputx/press"
	ReleaseID        EventID = "inputx/release"
	RenderID         EventID = "inputx/render"
	ResizeID         EventID = "inputx/resize"
	TextID           EventID = "inputx/text"
	TouchID          EventID = "inputx/touch"
	UpdateID         EventID = "inputx/update"
)
