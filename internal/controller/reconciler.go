package controller

const (
	// axisScale maps a normalized axis sample onto the signed 16-bit range.
	axisScale = 32767
	// deadzone collapses small magnitudes to exactly zero so a resting
	// stick always reads (0, 0).
	deadzone = 5000

	maxCoord = 32767
	minCoord = -32768
)

// Reconciler owns the controller snapshot: the current tick's button states,
// the live stick positions and the previous tick's stick positions. It is
// exclusively owned by the tick loop; no internal locking.
type Reconciler struct {
	states map[Button]State
	// seen marks buttons that already consumed a raw edge this tick, so
	// repeated edges within one tick merge instead of re-seeding.
	seen map[Button]struct{}
	// down is the last raw edge per button. Advance consults it so a press
	// whose release was folded into the same tick does not become a hold.
	down map[Button]bool

	sticks     [numSticks]Pos
	prevSticks [numSticks]Pos
}

func NewReconciler() *Reconciler {
	return &Reconciler{
		states: make(map[Button]State, NumButtons),
		seen:   make(map[Button]struct{}, NumButtons),
		down:   make(map[Button]bool, NumButtons),
	}
}

// merge resolves a raw edge against an entry that was already written this
// tick. The current-tick entry takes priority over history: a button marked
// Pressed stays Pressed no matter what else arrives, and a release seen on a
// Held entry counts as a fresh press edge.
func merge(s State, down bool) State {
	switch s {
	case StatePressed:
		return StatePressed
	case StateHeld:
		return StatePressed
	case StateReleased:
		if down {
			return StateHeld
		}
		return StateReleased
	}
	return StateIdle
}

// Record applies one raw digital transition for a button. down reports
// whether the physical control is going down or up.
func (r *Reconciler) Record(b Button, down bool) {
	r.down[b] = down
	if _, ok := r.seen[b]; ok {
		r.states[b] = merge(r.states[b], down)
		return
	}
	_, carried := r.states[b]
	var next State
	switch {
	case carried:
		// A carried entry is always Held: Advance promotes Pressed and
		// drops Released before the next tick begins. Still down means
		// no new edge; up ends the hold with a single release.
		if down {
			next = StateHeld
		} else {
			next = StateReleased
		}
	case down:
		next = StatePressed
	default:
		next = StateReleased
	}
	r.states[b] = next
	r.seen[b] = struct{}{}
}

// RecordAxis overwrites one stick coordinate from a normalized sample in
// [-1, 1]. The sample is scaled onto the signed 16-bit range truncating
// toward zero; magnitudes below the deadzone collapse to exactly 0.
func (r *Reconciler) RecordAxis(a Axis, value float64) {
	v := int(value * axisScale)
	if v > maxCoord {
		v = maxCoord
	} else if v < minCoord {
		v = minCoord
	}
	if v > -deadzone && v < deadzone {
		v = 0
	}
	switch a {
	case AxisLeftX:
		r.sticks[StickLeft].X = v
	case AxisLeftY:
		r.sticks[StickLeft].Y = v
	case AxisRightX:
		r.sticks[StickRight].X = v
	case AxisRightY:
		r.sticks[StickRight].Y = v
	}
}

// ButtonChange is one digital entry of a tick's delta.
type ButtonChange struct {
	Button Button
	State  State
}

// StickChange is one analog entry of a tick's delta.
type StickChange struct {
	Stick Stick
	Pos   Pos
}

// Delta is the minimal set of protocol-relevant changes for one tick.
type Delta struct {
	Buttons []ButtonChange
	Sticks  []StickChange
}

func (d Delta) Empty() bool {
	return len(d.Buttons) == 0 && len(d.Sticks) == 0
}

// Delta reports every button with a non-idle state this tick, plus each
// stick whose position moved since the previous tick. Pure read; button
// order is unspecified.
func (r *Reconciler) Delta() Delta {
	var d Delta
	for b, s := range r.states {
		d.Buttons = append(d.Buttons, ButtonChange{Button: b, State: s})
	}
	for i := range r.sticks {
		if r.sticks[i] != r.prevSticks[i] {
			d.Sticks = append(d.Sticks, StickChange{Stick: Stick(i), Pos: r.sticks[i]})
		}
	}
	return d
}

// Advance moves the snapshot across the tick boundary: press edges become
// steady holds while the button is still physically down, release edges are
// dropped after their single report, and the stick positions become the new
// comparison baseline. A press whose release arrived within the same tick is
// dropped too; its whole lifetime was the one click already reported. Must
// run exactly once per tick, after Delta has been consumed.
func (r *Reconciler) Advance() {
	for b, s := range r.states {
		switch s {
		case StatePressed:
			if r.down[b] {
				r.states[b] = StateHeld
			} else {
				delete(r.states, b)
				delete(r.down, b)
			}
		case StateReleased:
			delete(r.states, b)
			delete(r.down, b)
		}
	}
	clear(r.seen)
	r.prevSticks = r.sticks
}
