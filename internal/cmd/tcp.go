package cmd

import (
	"log/slog"
	"time"

	"github.com/padrelay/padrelay/internal/transport"
)

// TCP relays the gamepad over the network.
type TCP struct {
	Addr    string        `help:"Target address (ipv4:port); prompted for when omitted" env:"PADRELAY_ADDR"`
	Timeout time.Duration `help:"Connect timeout" default:"3s" env:"PADRELAY_DIAL_TIMEOUT"`
}

// Run is called by Kong when the tcp command is executed.
func (c *TCP) Run(logger *slog.Logger) error {
	addr := c.Addr
	if addr == "" {
		var err error
		if addr, err = promptAddr(); err != nil {
			return err
		}
	} else if err := validateAddr(addr); err != nil {
		return err
	}

	trans, err := transport.DialTCP(addr, c.Timeout)
	if err != nil {
		return err
	}
	logger.Info("connected to target", "addr", addr)
	return runRelay(logger, trans)
}
