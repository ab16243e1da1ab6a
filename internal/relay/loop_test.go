package relay

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padrelay/padrelay/internal/controller"
	"github.com/padrelay/padrelay/internal/input"
)

type mockTransport struct {
	sent [][]string
	err  error
}

func (m *mockTransport) Send(cmds []string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, cmds)
	return nil
}

func (m *mockTransport) Period() time.Duration { return 5 * time.Millisecond }

func (m *mockTransport) Close() error { return nil }

func testLoop(trans *mockTransport) (*Loop, chan input.Event) {
	events := make(chan input.Event, 64)
	return New(slog.New(slog.DiscardHandler), events, trans), events
}

// runTick drains queued events and flushes one tick. The deadline is already
// in the past so the drain consumes only what is buffered.
func runTick(t *testing.T, l *Loop, events []input.Event, ch chan input.Event) {
	t.Helper()
	for _, ev := range events {
		ch <- ev
	}
	stop, err := l.tick(context.Background(), time.Now().Add(2*time.Millisecond))
	require.NoError(t, err)
	require.False(t, stop)
}

func TestLoopClickPressRelease(t *testing.T) {
	trans := &mockTransport{}
	l, ch := testLoop(trans)

	runTick(t, l, []input.Event{{Kind: input.KindButtonDown, Button: input.ButtonEast}}, ch)
	require.Len(t, trans.sent, 1)
	assert.Equal(t, []string{"click A"}, trans.sent[0])

	runTick(t, l, nil, ch)
	require.Len(t, trans.sent, 2)
	assert.Equal(t, []string{"press A"}, trans.sent[1])

	runTick(t, l, []input.Event{{Kind: input.KindButtonUp, Button: input.ButtonEast}}, ch)
	require.Len(t, trans.sent, 3)
	assert.Equal(t, []string{"release A"}, trans.sent[2])

	// Nothing left to report: no transmission at all.
	runTick(t, l, nil, ch)
	assert.Len(t, trans.sent, 3)
}

// A tap faster than the tick period produces exactly one click and then
// silence; the target must not see the button held afterwards.
func TestLoopTapWithinOneTick(t *testing.T) {
	trans := &mockTransport{}
	l, ch := testLoop(trans)

	runTick(t, l, []input.Event{
		{Kind: input.KindButtonDown, Button: input.ButtonEast},
		{Kind: input.KindButtonUp, Button: input.ButtonEast},
	}, ch)
	require.Len(t, trans.sent, 1)
	assert.Equal(t, []string{"click A"}, trans.sent[0])

	runTick(t, l, nil, ch)
	runTick(t, l, nil, ch)
	assert.Len(t, trans.sent, 1)
}

func TestLoopStickDelta(t *testing.T) {
	trans := &mockTransport{}
	l, ch := testLoop(trans)

	runTick(t, l, []input.Event{
		{Kind: input.KindAxisMove, Axis: input.AxisLeftX, Value: 0.5},
		{Kind: input.KindAxisMove, Axis: input.AxisLeftY, Value: -0.5},
	}, ch)
	require.Len(t, trans.sent, 1)
	assert.Equal(t, []string{"setStick LEFT 0x3FFF -0x3FFF"}, trans.sent[0])

	// Same position re-sampled: no packet.
	runTick(t, l, []input.Event{
		{Kind: input.KindAxisMove, Axis: input.AxisLeftX, Value: 0.5},
	}, ch)
	assert.Len(t, trans.sent, 1)
}

func TestLoopIgnoresUnmappedButton(t *testing.T) {
	trans := &mockTransport{}
	l, ch := testLoop(trans)

	runTick(t, l, []input.Event{{Kind: input.KindButtonDown, Button: input.Button(200)}}, ch)
	assert.Empty(t, trans.sent)
}

func TestLoopDisconnectStops(t *testing.T) {
	trans := &mockTransport{}
	l, ch := testLoop(trans)

	ch <- input.Event{Kind: input.KindButtonDown, Button: input.ButtonSouth}
	ch <- input.Event{Kind: input.KindDisconnect}
	stop, err := l.tick(context.Background(), time.Now().Add(2*time.Millisecond))
	require.NoError(t, err)
	assert.True(t, stop)
}

func TestLoopSendErrorSurfaces(t *testing.T) {
	sendErr := errors.New("broken pipe")
	trans := &mockTransport{err: sendErr}
	l, ch := testLoop(trans)

	ch <- input.Event{Kind: input.KindButtonDown, Button: input.ButtonEast}
	_, err := l.tick(context.Background(), time.Now().Add(2*time.Millisecond))
	require.Error(t, err)
	assert.ErrorIs(t, err, sendErr)
}

func TestLoopRunHonorsContext(t *testing.T) {
	trans := &mockTransport{}
	l, _ := testLoop(trans)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranslationCoversAllControllerButtons(t *testing.T) {
	seen := make(map[controller.Button]bool)
	for _, b := range padButtons {
		seen[b] = true
	}
	// 18 logical buttons, each reachable from exactly one pad button.
	assert.Len(t, padButtons, 18)
	assert.Len(t, seen, 18)
}
