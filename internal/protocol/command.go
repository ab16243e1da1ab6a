// Package protocol renders a tick's delta into the controller-emulation
// command language understood by the target, and frames commands for the
// wire.
//
// Digital commands: "click <NAME>" (press edge), "press <NAME>" (steady
// hold), "release <NAME>" (release edge). Analog commands:
// "setStick LEFT|RIGHT <X> <Y>" with signed 16-bit hex coordinates.
package protocol

import (
	"fmt"

	"github.com/padrelay/padrelay/internal/controller"
)

// buttonNames is the total mnemonic table for the closed button set. A
// missing entry is a programming defect, not a runtime condition.
var buttonNames = [controller.NumButtons]string{
	controller.ButtonA:       "A",
	controller.ButtonB:       "B",
	controller.ButtonX:       "X",
	controller.ButtonY:       "Y",
	controller.ButtonDRight:  "DRIGHT",
	controller.ButtonDDown:   "DDOWN",
	controller.ButtonDLeft:   "DLEFT",
	controller.ButtonDUp:     "DUP",
	controller.ButtonR:       "R",
	controller.ButtonL:       "L",
	controller.ButtonZR:      "ZR",
	controller.ButtonZL:      "ZL",
	controller.ButtonRStick:  "RSTICK",
	controller.ButtonLStick:  "LSTICK",
	controller.ButtonPlus:    "PLUS",
	controller.ButtonMinus:   "MINUS",
	controller.ButtonCapture: "CAPTURE",
	controller.ButtonHome:    "HOME",
}

// ButtonName returns the protocol mnemonic for a button. Panics on a button
// outside the closed set.
func ButtonName(b controller.Button) string {
	name := buttonNames[b]
	if name == "" {
		panic(fmt.Sprintf("protocol: no name for button %d", b))
	}
	return name
}

func stickName(s controller.Stick) string {
	if s == controller.StickLeft {
		return "LEFT"
	}
	return "RIGHT"
}

// Command renders one digital delta entry.
func Command(c controller.ButtonChange) string {
	var verb string
	switch c.State {
	case controller.StatePressed:
		verb = "click"
	case controller.StateHeld:
		verb = "press"
	case controller.StateReleased:
		verb = "release"
	default:
		panic(fmt.Sprintf("protocol: cannot render state %v", c.State))
	}
	return verb + " " + ButtonName(c.Button)
}

// StickCommand renders one analog delta entry.
func StickCommand(c controller.StickChange) string {
	return fmt.Sprintf("setStick %s %s %s", stickName(c.Stick), HexCoord(c.Pos.X), HexCoord(c.Pos.Y))
}

// HexCoord renders a stick coordinate as a signed hex literal: 0x + 4
// uppercase digits, with a leading minus for negative values. A coordinate
// outside the signed 16-bit range indicates broken clamping upstream and
// panics.
func HexCoord(v int) string {
	if v < -0x8000 || v > 0x7FFF {
		panic(fmt.Sprintf("protocol: coordinate %d outside signed 16-bit range", v))
	}
	if v < 0 {
		return fmt.Sprintf("-0x%04X", -v)
	}
	return fmt.Sprintf("0x%04X", v)
}

// Render converts a tick's delta into an ordered command sequence: digital
// commands first, then stick updates.
func Render(d controller.Delta) []string {
	if d.Empty() {
		return nil
	}
	cmds := make([]string, 0, len(d.Buttons)+len(d.Sticks))
	for _, c := range d.Buttons {
		cmds = append(cmds, Command(c))
	}
	for _, c := range d.Sticks {
		cmds = append(cmds, StickCommand(c))
	}
	return cmds
}
