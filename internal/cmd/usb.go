package cmd

import (
	"log/slog"

	"github.com/padrelay/padrelay/internal/transport"
)

// USB relays the gamepad over the target's USB bulk pipe.
type USB struct{}

// Run is called by Kong when the usb command is executed.
func (c *USB) Run(logger *slog.Logger) error {
	trans, err := transport.OpenUSB()
	if err != nil {
		return err
	}
	logger.Info("connected to target over USB")
	return runRelay(logger, trans)
}
