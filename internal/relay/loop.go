package relay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/padrelay/padrelay/internal/controller"
	"github.com/padrelay/padrelay/internal/input"
	"github.com/padrelay/padrelay/internal/protocol"
	"github.com/padrelay/padrelay/internal/transport"
)

// drainPause is how long the loop sleeps when the event channel is empty
// before checking the tick deadline again.
const drainPause = time.Millisecond

// Loop is the single-goroutine polling loop. It exclusively owns the
// reconciler; nothing else touches controller state while it runs.
type Loop struct {
	logger *slog.Logger
	events <-chan input.Event
	trans  transport.Transport
	rec    *controller.Reconciler
}

func New(logger *slog.Logger, events <-chan input.Event, trans transport.Transport) *Loop {
	return &Loop{
		logger: logger,
		events: events,
		trans:  trans,
		rec:    controller.NewReconciler(),
	}
}

// Run drives ticks at the transport's period until the pad disconnects, the
// context is cancelled, or transmission fails. A transmission failure is
// returned rather than aborting the process, so the caller decides whether
// to reconnect or exit.
func (l *Loop) Run(ctx context.Context) error {
	period := l.trans.Period()
	l.logger.Debug("tick loop started", "period", period)

	for {
		stop, err := l.tick(ctx, time.Now().Add(period))
		if err != nil {
			return err
		}
		if stop {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.logger.Info("gamepad disconnected, stopping")
			return nil
		}
	}
}

// tick drains events until the deadline, transmits the resulting delta and
// advances the snapshot. stop reports a terminal condition (disconnect or
// cancelled context).
func (l *Loop) tick(ctx context.Context, deadline time.Time) (stop bool, err error) {
	for time.Now().Before(deadline) {
		select {
		case ev := <-l.events:
			if l.apply(ev) {
				return true, nil
			}
		case <-ctx.Done():
			return true, nil
		default:
			time.Sleep(drainPause)
		}
	}

	if err := l.flush(); err != nil {
		return false, err
	}
	l.rec.Advance()
	return false, nil
}

// apply feeds one raw event into the reconciler. Reports whether the event
// was a terminal disconnect.
func (l *Loop) apply(ev input.Event) bool {
	switch ev.Kind {
	case input.KindButtonDown, input.KindButtonUp:
		b, ok := padButtons[ev.Button]
		if !ok {
			return false
		}
		l.rec.Record(b, ev.Kind == input.KindButtonDown)
	case input.KindAxisMove:
		if a, ok := padAxes[ev.Axis]; ok {
			l.rec.RecordAxis(a, ev.Value)
		}
	case input.KindDisconnect:
		return true
	}
	return false
}

// flush renders and transmits the current tick's delta. Empty deltas send
// nothing.
func (l *Loop) flush() error {
	cmds := protocol.Render(l.rec.Delta())
	if len(cmds) == 0 {
		return nil
	}
	for _, cmd := range cmds {
		l.logger.Debug("send", "cmd", cmd)
	}
	if err := l.trans.Send(cmds); err != nil {
		return fmt.Errorf("transmit tick: %w", err)
	}
	return nil
}
