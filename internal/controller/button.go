// Package controller tracks the emulated controller's digital and analog
// state across polling ticks. It turns an unordered, possibly duplicated
// stream of raw button edges and axis samples into a minimal per-tick delta.
package controller

// Button identifies one logical control of the emulated controller.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonDRight
	ButtonDDown
	ButtonDLeft
	ButtonDUp
	ButtonR
	ButtonL
	ButtonZR
	ButtonZL
	ButtonRStick
	ButtonLStick
	ButtonPlus
	ButtonMinus
	ButtonCapture
	ButtonHome

	NumButtons = int(ButtonHome) + 1
)

// State is the per-tick transition state of a button. Pressed and Released
// are edges, reported on the tick they are first observed; Held is a level,
// reported on every tick the button stays down. Idle buttons carry no entry.
type State uint8

const (
	StateIdle State = iota
	StatePressed
	StateHeld
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateHeld:
		return "held"
	case StateReleased:
		return "released"
	}
	return "unknown"
}

// Stick identifies one of the two analog sticks.
type Stick uint8

const (
	StickLeft Stick = iota
	StickRight

	numSticks = int(StickRight) + 1
)

// Axis identifies a single analog coordinate.
type Axis uint8

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
)

// Pos is an analog stick position. Both coordinates stay within the signed
// 16-bit range.
type Pos struct {
	X, Y int
}
