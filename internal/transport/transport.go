// Package transport delivers a tick's command batch to the target device,
// over either the USB bulk pipe or a plain TCP connection.
package transport

import "time"

// Transport is one open connection to the target. Send blocks until the
// whole batch is on the wire; there is deliberately no timeout on it, so a
// hung target stalls the tick loop rather than silently dropping commands.
type Transport interface {
	// Send transmits one tick's commands in order. Any failure is
	// surfaced to the caller so it can decide to retry or terminate.
	Send(cmds []string) error
	// Period is the tick period this transport is driven at.
	Period() time.Duration
	Close() error
}
