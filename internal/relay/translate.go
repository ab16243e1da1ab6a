// Package relay runs the polling loop: it drains raw pad events into the
// reconciler each tick, renders the tick's delta into protocol commands and
// hands them to the transport.
package relay

import (
	"github.com/padrelay/padrelay/internal/controller"
	"github.com/padrelay/padrelay/internal/input"
)

// padButtons translates the external pad vocabulary into logical controller
// buttons. Built once, never mutated. Pad buttons without an entry are
// silently ignored; that is defined behavior, not an error.
var padButtons = map[input.Button]controller.Button{
	input.ButtonEast:         controller.ButtonA,
	input.ButtonSouth:        controller.ButtonB,
	input.ButtonNorth:        controller.ButtonX,
	input.ButtonWest:         controller.ButtonY,
	input.ButtonDPadRight:    controller.ButtonDRight,
	input.ButtonDPadDown:     controller.ButtonDDown,
	input.ButtonDPadLeft:     controller.ButtonDLeft,
	input.ButtonDPadUp:       controller.ButtonDUp,
	input.ButtonRightBumper:  controller.ButtonR,
	input.ButtonLeftBumper:   controller.ButtonL,
	input.ButtonRightTrigger: controller.ButtonZR,
	input.ButtonLeftTrigger:  controller.ButtonZL,
	input.ButtonRightThumb:   controller.ButtonRStick,
	input.ButtonLeftThumb:    controller.ButtonLStick,
	input.ButtonStart:        controller.ButtonPlus,
	input.ButtonSelect:       controller.ButtonMinus,
	input.ButtonMode:         controller.ButtonHome,
	input.ButtonExtra:        controller.ButtonCapture,
}

// padAxes translates pad axes onto controller axes one to one.
var padAxes = map[input.Axis]controller.Axis{
	input.AxisLeftX:  controller.AxisLeftX,
	input.AxisLeftY:  controller.AxisLeftY,
	input.AxisRightX: controller.AxisRightX,
	input.AxisRightY: controller.AxisRightY,
}
