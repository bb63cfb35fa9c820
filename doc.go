// Package inputx models user-interaction events (keyboard, mouse, controller,
// text, window focus and resize) independently of any windowing backend or
// widget library.
//
// The core of the package is the GenericEvent capability: a three-operation
// contract (tag query, tagged construction, scoped payload access) that a
// concrete event type implements once to gain every typed accessor defined
// here. Backends construct events through the Make* functions without knowing
// how a concrete type stores its variants; consumers extract through the
// Map*/...Of functions without enumerating variants. New concrete event types
// and new event kinds can therefore be added independently of each other.
//
// # Reference model
//
// Input is the reference concrete event type covering the input kinds; Event
// wraps it with render/update/idle variants plus a custom variant for kinds
// defined outside this package. Host applications with their own richer event
// representation implement GenericEvent instead and inherit the same
// accessors.
//
// # Error model
//
// Asking an accessor about a kind the event does not hold is a normal outcome
// and reports false. A payload whose dynamic type contradicts the event's own
// tag is a bug in that concrete type's GenericEvent implementation and
// panics; see GenericEvent.
package inputx
