// Package config defines the CLI structure for padrelay.
package config

import (
	"github.com/padrelay/padrelay/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"PADRELAY_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"PADRELAY_LOG_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Connect cmd.Connect `cmd:"" default:"1" help:"Pick the connection kind interactively"`
	USB     cmd.USB     `cmd:"" name:"usb" help:"Relay the gamepad over USB"`
	TCP     cmd.TCP     `cmd:"" name:"tcp" help:"Relay the gamepad over the network"`
}
