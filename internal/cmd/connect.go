package cmd

import (
	"log/slog"
	"time"
)

// Connect is the default command: it asks the operator which connection
// kind to use, then behaves like the picked command.
type Connect struct{}

func (c *Connect) Run(logger *slog.Logger) error {
	choice, err := promptChoice("Connection kind", "usb", "network")
	if err != nil {
		return err
	}
	if choice == "usb" {
		return (&USB{}).Run(logger)
	}
	return (&TCP{Timeout: 3 * time.Second}).Run(logger)
}
