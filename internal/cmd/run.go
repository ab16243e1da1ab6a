// Package cmd implements the padrelay CLI commands.
package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/padrelay/padrelay/internal/input"
	"github.com/padrelay/padrelay/internal/relay"
	"github.com/padrelay/padrelay/internal/transport"
)

// runRelay wires the gamepad reader to the tick loop over an open transport
// and blocks until disconnect, signal, or failure.
func runRelay(logger *slog.Logger, trans transport.Transport) error {
	defer trans.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reader := input.NewReader(logger)
	readerErr := make(chan error, 1)
	go func() { readerErr <- reader.Run(ctx) }()

	loop := relay.New(logger, reader.Events(), trans)
	loopErr := make(chan error, 1)
	go func() { loopErr <- loop.Run(ctx) }()

	logger.Info("connect a gamepad and press a button")

	var err error
	select {
	case err = <-readerErr:
		cancel()
		<-loopErr
	case err = <-loopErr:
		cancel()
		<-readerErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
