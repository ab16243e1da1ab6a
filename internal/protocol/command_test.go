package protocol_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padrelay/padrelay/internal/controller"
	"github.com/padrelay/padrelay/internal/protocol"
)

func TestHexCoord(t *testing.T) {
	type testCase struct {
		value int
		want  string
	}

	cases := []testCase{
		{value: 0, want: "0x0000"},
		{value: 1, want: "0x0001"},
		{value: -1, want: "-0x0001"},
		{value: 16383, want: "0x3FFF"},
		{value: -16383, want: "-0x3FFF"},
		{value: 32767, want: "0x7FFF"},
		{value: -32768, want: "-0x8000"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, protocol.HexCoord(tc.value))
		})
	}
}

// Encoding must be a bijection on the signed 16-bit domain: distinct values
// give distinct strings and parsing the string recovers the value.
func TestHexCoordRoundTrip(t *testing.T) {
	for _, v := range []int{-32768, -32767, -4097, -1, 0, 1, 255, 4096, 32766, 32767} {
		s := protocol.HexCoord(v)

		neg := strings.HasPrefix(s, "-")
		digits := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "0x")
		require.Len(t, digits, 4)
		parsed, err := strconv.ParseInt(digits, 16, 32)
		require.NoError(t, err)
		if neg {
			parsed = -parsed
		}
		assert.Equal(t, int64(v), parsed)
	}
}

func TestHexCoordRangePanics(t *testing.T) {
	assert.Panics(t, func() { protocol.HexCoord(32768) })
	assert.Panics(t, func() { protocol.HexCoord(-32769) })
}

// The mnemonic table is total and bijective over the closed button set.
func TestButtonNamesTotal(t *testing.T) {
	seen := make(map[string]controller.Button)
	for i := 0; i < controller.NumButtons; i++ {
		b := controller.Button(i)
		name := protocol.ButtonName(b)
		require.NotEmpty(t, name)
		_, dup := seen[name]
		require.False(t, dup, "duplicate name %q", name)
		seen[name] = b
	}
	assert.Equal(t, "A", protocol.ButtonName(controller.ButtonA))
	assert.Equal(t, "ZR", protocol.ButtonName(controller.ButtonZR))
	assert.Equal(t, "DUP", protocol.ButtonName(controller.ButtonDUp))
	assert.Equal(t, "LSTICK", protocol.ButtonName(controller.ButtonLStick))
}

func TestCommand(t *testing.T) {
	assert.Equal(t, "click A",
		protocol.Command(controller.ButtonChange{Button: controller.ButtonA, State: controller.StatePressed}))
	assert.Equal(t, "press ZL",
		protocol.Command(controller.ButtonChange{Button: controller.ButtonZL, State: controller.StateHeld}))
	assert.Equal(t, "release MINUS",
		protocol.Command(controller.ButtonChange{Button: controller.ButtonMinus, State: controller.StateReleased}))

	assert.Panics(t, func() {
		protocol.Command(controller.ButtonChange{Button: controller.ButtonA, State: controller.StateIdle})
	})
}

func TestStickCommand(t *testing.T) {
	assert.Equal(t, "setStick LEFT 0x3FFF -0x3FFF", protocol.StickCommand(controller.StickChange{
		Stick: controller.StickLeft,
		Pos:   controller.Pos{X: 16383, Y: -16383},
	}))
	assert.Equal(t, "setStick RIGHT 0x0000 0x7FFF", protocol.StickCommand(controller.StickChange{
		Stick: controller.StickRight,
		Pos:   controller.Pos{Y: 32767},
	}))
}

func TestRenderOrdersDigitalFirst(t *testing.T) {
	d := controller.Delta{
		Buttons: []controller.ButtonChange{
			{Button: controller.ButtonA, State: controller.StatePressed},
			{Button: controller.ButtonB, State: controller.StateReleased},
		},
		Sticks: []controller.StickChange{
			{Stick: controller.StickLeft, Pos: controller.Pos{X: 10000}},
		},
	}

	cmds := protocol.Render(d)
	require.Len(t, cmds, 3)
	assert.ElementsMatch(t, []string{"click A", "release B"}, cmds[:2])
	assert.Equal(t, "setStick LEFT 0x2710 0x0000", cmds[2])
}

func TestRenderEmptyDelta(t *testing.T) {
	assert.Nil(t, protocol.Render(controller.Delta{}))
}
