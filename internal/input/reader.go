package input

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/jupiterrider/purego-sdl3/sdl"
)

const (
	// pollDelayNS paces the SDL event pump; events are buffered on the
	// channel so the tick loop never waits on SDL directly.
	pollDelayNS = 1_000_000 // 1ms

	hatUp    uint8 = 0x01
	hatRight uint8 = 0x02
	hatDown  uint8 = 0x04
	hatLeft  uint8 = 0x08

	// Trigger axes become digital trigger buttons. The two thresholds
	// add hysteresis so an analog trigger resting near the press point
	// does not chatter.
	triggerPressAt   = 0.5
	triggerReleaseAt = 0.4
)

type padInfo struct {
	joystick *sdl.Joystick
	mapping  *DeviceMapping
	name     string
	id       sdl.JoystickID
}

// Reader pumps SDL3 joystick events and emits pad events for the single
// active pad on its channel.
type Reader struct {
	logger *slog.Logger
	events chan Event

	pads      map[sdl.JoystickID]*padInfo
	activeID  sdl.JoystickID
	hasActive bool

	hat      uint8
	triggers triggerState
}

func NewReader(logger *slog.Logger) *Reader {
	return &Reader{
		logger: logger,
		events: make(chan Event, 256),
		pads:   make(map[sdl.JoystickID]*padInfo),
	}
}

// Events returns the channel the reader emits on.
func (r *Reader) Events() <-chan Event {
	return r.events
}

// Run initializes SDL and pumps events until ctx is cancelled. It locks the
// calling goroutine to its OS thread for the SDL event loop.
func (r *Reader) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if !sdl.Init(sdl.InitJoystick) {
		return fmt.Errorf("sdl init: %s", sdl.GetError())
	}
	defer sdl.Quit()

	r.logger.Debug("SDL3 joystick subsystem initialized")

	for _, id := range sdl.GetJoysticks() {
		r.openPad(id)
	}

	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return ctx.Err()
		default:
		}

		r.pump(ctx)
		sdl.DelayNS(pollDelayNS)
	}
}

func (r *Reader) pump(ctx context.Context) {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventJoystickAdded:
			r.openPad(event.JDevice().Which)

		case sdl.EventJoystickRemoved:
			r.removePad(ctx, event.JDevice().Which)

		case sdl.EventJoystickButtonDown:
			be := event.JButton()
			r.handleButton(ctx, be.Which, int32(be.Button), true)

		case sdl.EventJoystickButtonUp:
			be := event.JButton()
			r.handleButton(ctx, be.Which, int32(be.Button), false)

		case sdl.EventJoystickAxisMotion:
			ae := event.JAxis()
			r.handleAxis(ctx, ae.Which, int32(ae.Axis), ae.Value)

		case sdl.EventJoystickHatMotion:
			he := event.JHat()
			r.handleHat(ctx, he.Which, he.Hat, he.Value)
		}
	}
}

func (r *Reader) openPad(instanceID sdl.JoystickID) {
	if _, exists := r.pads[instanceID]; exists {
		return
	}

	js := sdl.OpenJoystick(instanceID)
	if js == nil {
		r.logger.Warn("failed to open joystick", "id", instanceID, "error", sdl.GetError())
		return
	}

	id := sdl.GetJoystickID(js)
	vendorID := sdl.GetJoystickVendor(js)
	productID := sdl.GetJoystickProduct(js)
	name := sdl.GetJoystickName(js)
	mapping := MappingFor(vendorID, productID)

	r.pads[id] = &padInfo{joystick: js, mapping: mapping, name: name, id: id}

	r.logger.Info("gamepad connected",
		"name", name,
		"vid", fmt.Sprintf("%04X", vendorID),
		"pid", fmt.Sprintf("%04X", productID),
		"mapping", mapping.Name)

	// First pad to connect is the active input source.
	if !r.hasActive {
		r.activeID = id
		r.hasActive = true
		r.hat = 0
		r.triggers = triggerState{}
		r.logger.Info("active gamepad set", "name", name)
	}
}

// removePad closes a departed pad. Losing the active pad is terminal: the
// tick loop sees a disconnect event and exits.
func (r *Reader) removePad(ctx context.Context, instanceID sdl.JoystickID) {
	info, exists := r.pads[instanceID]
	if !exists {
		return
	}

	r.logger.Info("gamepad disconnected", "name", info.name)
	sdl.CloseJoystick(info.joystick)
	delete(r.pads, instanceID)

	if r.hasActive && r.activeID == instanceID {
		r.hasActive = false
		select {
		case r.events <- Event{Kind: KindDisconnect}:
		case <-ctx.Done():
		}
	}
}

func (r *Reader) closeAll() {
	for id, info := range r.pads {
		sdl.CloseJoystick(info.joystick)
		delete(r.pads, id)
	}
}

func (r *Reader) active(which sdl.JoystickID) *padInfo {
	if !r.hasActive || which != r.activeID {
		return nil
	}
	return r.pads[which]
}

func (r *Reader) handleButton(ctx context.Context, which sdl.JoystickID, index int32, down bool) {
	info := r.active(which)
	if info == nil {
		return
	}
	b, ok := info.mapping.button(index)
	if !ok {
		return
	}
	kind := KindButtonUp
	if down {
		kind = KindButtonDown
	}
	r.emitEdge(ctx, Event{Kind: kind, Button: b})
}

func (r *Reader) handleAxis(ctx context.Context, which sdl.JoystickID, index int32, raw int16) {
	info := r.active(which)
	if info == nil {
		return
	}
	am, ok := info.mapping.axis(index)
	if !ok {
		return
	}
	if am.IsTrigger {
		value := NormalizeTrigger(raw, am.RawMin, am.RawMax)
		for _, ev := range r.triggers.update(am.Trigger, value) {
			r.emitEdge(ctx, ev)
		}
		return
	}
	value := NormalizeAxis(raw)
	if am.Invert {
		value = -value
	}
	r.emit(Event{Kind: KindAxisMove, Axis: am.Target, Value: value})
}

func (r *Reader) handleHat(ctx context.Context, which sdl.JoystickID, hat uint8, value uint8) {
	info := r.active(which)
	if info == nil || !info.mapping.HasHat || hat != 0 {
		return
	}
	for _, ev := range diffHat(r.hat, value) {
		r.emitEdge(ctx, ev)
	}
	r.hat = value
}

// emit drops axis samples when the channel is full rather than blocking the
// SDL thread; the next sample overwrites the same coordinate anyway.
func (r *Reader) emit(ev Event) {
	select {
	case r.events <- ev:
	default:
	}
}

// emitEdge delivers a digital edge even when the channel is momentarily
// full. A lost down or up edge would wedge the button state with no later
// sample to correct it, so edges wait for the consumer instead of dropping;
// cancellation bounds the wait.
func (r *Reader) emitEdge(ctx context.Context, ev Event) {
	select {
	case r.events <- ev:
	case <-ctx.Done():
	}
}

var hatDirections = []struct {
	bit    uint8
	button Button
}{
	{hatUp, ButtonDPadUp},
	{hatRight, ButtonDPadRight},
	{hatDown, ButtonDPadDown},
	{hatLeft, ButtonDPadLeft},
}

// diffHat converts a hat bitmask change into d-pad edge events.
func diffHat(old, now uint8) []Event {
	if old == now {
		return nil
	}
	var evs []Event
	for _, d := range hatDirections {
		was, is := old&d.bit != 0, now&d.bit != 0
		switch {
		case is && !was:
			evs = append(evs, Event{Kind: KindButtonDown, Button: d.button})
		case was && !is:
			evs = append(evs, Event{Kind: KindButtonUp, Button: d.button})
		}
	}
	return evs
}

// triggerState tracks the digital state synthesized from the two analog
// trigger axes.
type triggerState struct {
	left, right bool
}

func (t *triggerState) update(b Button, value float64) []Event {
	down := &t.left
	if b == ButtonRightTrigger {
		down = &t.right
	}
	switch {
	case !*down && value >= triggerPressAt:
		*down = true
		return []Event{{Kind: KindButtonDown, Button: b}}
	case *down && value <= triggerReleaseAt:
		*down = false
		return []Event{{Kind: KindButtonUp, Button: b}}
	}
	return nil
}
