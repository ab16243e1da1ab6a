package input

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmitDropsAxisWhenFull(t *testing.T) {
	r := &Reader{events: make(chan Event, 1)}
	r.emit(Event{Kind: KindAxisMove, Axis: AxisLeftX, Value: 0.5})
	r.emit(Event{Kind: KindAxisMove, Axis: AxisLeftX, Value: 1})

	ev := <-r.events
	assert.Equal(t, 0.5, ev.Value)
	select {
	case <-r.events:
		t.Fatal("dropped sample was delivered")
	default:
	}
}

func TestEmitEdgeWaitsForConsumer(t *testing.T) {
	r := &Reader{events: make(chan Event, 1)}
	r.emit(Event{Kind: KindAxisMove})

	delivered := make(chan struct{})
	go func() {
		r.emitEdge(context.Background(), Event{Kind: KindButtonUp, Button: ButtonSouth})
		close(delivered)
	}()

	select {
	case <-delivered:
		t.Fatal("edge delivered before the channel had room")
	case <-time.After(10 * time.Millisecond):
	}

	<-r.events
	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("edge never delivered")
	}
	ev := <-r.events
	assert.Equal(t, KindButtonUp, ev.Kind)
	assert.Equal(t, ButtonSouth, ev.Button)
}

func TestEmitEdgeStopsOnCancel(t *testing.T) {
	r := &Reader{events: make(chan Event)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		r.emitEdge(ctx, Event{Kind: KindButtonDown, Button: ButtonSouth})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("emitEdge did not return after cancellation")
	}
}
