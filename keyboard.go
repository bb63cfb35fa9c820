package inputx

// Key identifies a keyboard key. The concrete key-code assignment is owned
// by the backend producing the events; this package only requires that equal
// codes mean the same key.
type Key uint32

// KeyUnknown is reported by backends for keys they cannot identify.
const KeyUnknown Key = 0

// AsButton wraps the key in the Button sum type.
func (k Key) AsButton() Button {
	return Button{Kind: ButtonKeyboard, Key: k}
}
