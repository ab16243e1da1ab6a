// Package input reads raw gamepad events from the SDL3 joystick subsystem
// and translates them into a fixed, device-independent pad vocabulary.
// Exactly one pad is active at a time: the first one that connects. Events
// from other pads are ignored, and removal of the active pad is terminal.
package input

// Button is the external pad vocabulary, named by physical position rather
// than by label so the same mapping works across vendors.
type Button uint8

const (
	ButtonSouth Button = iota
	ButtonEast
	ButtonWest
	ButtonNorth
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonLeftBumper
	ButtonRightBumper
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonLeftThumb
	ButtonRightThumb
	ButtonStart
	ButtonSelect
	ButtonMode
	ButtonExtra
)

// Axis is one analog coordinate of the two sticks.
type Axis uint8

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
)

// Kind tags an Event.
type Kind uint8

const (
	// KindButtonDown and KindButtonUp carry Button.
	KindButtonDown Kind = iota
	KindButtonUp
	// KindAxisMove carries Axis and a normalized Value in [-1, 1].
	KindAxisMove
	// KindDisconnect reports that the active pad went away. Terminal.
	KindDisconnect
)

// Event is one raw input transition from the active pad.
type Event struct {
	Kind   Kind
	Button Button
	Axis   Axis
	Value  float64
}
