package transport_test

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padrelay/padrelay/internal/transport"
)

func TestTCPSend(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			received <- nil
			return
		}
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	tr, err := transport.DialTCP(ln.Addr().String(), time.Second)
	require.NoError(t, err)

	require.NoError(t, tr.Send([]string{"click A", "setStick LEFT 0x3FFF -0x3FFF"}))
	require.NoError(t, tr.Close())

	assert.Equal(t, []byte("click A\r\nsetStick LEFT 0x3FFF -0x3FFF\r\n"), <-received)
}

func TestTCPSendAfterCloseFails(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			conn.Close()
		}
	}()

	tr, err := transport.DialTCP(ln.Addr().String(), time.Second)
	require.NoError(t, err)
	require.NoError(t, tr.Close())

	assert.Error(t, tr.Send([]string{"press B"}))
}

func TestTCPDialFailure(t *testing.T) {
	// A listener that is immediately closed leaves a port nothing accepts on.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = transport.DialTCP(addr, 200*time.Millisecond)
	assert.Error(t, err)
}

func TestTCPPeriod(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			defer conn.Close()
			_, _ = io.ReadAll(conn)
		}
	}()

	tr, err := transport.DialTCP(ln.Addr().String(), time.Second)
	require.NoError(t, err)
	defer tr.Close()

	assert.Equal(t, 100*time.Millisecond, tr.Period())
}
