package transport

import (
	"fmt"
	"net"
	"time"

	"github.com/padrelay/padrelay/internal/protocol"
)

// tcpPeriod is the network tick period; coarser than USB to leave headroom
// for wireless latency.
const tcpPeriod = 100 * time.Millisecond

// TCP sends commands as CRLF-terminated text lines over a single
// connection.
type TCP struct {
	conn net.Conn
}

// DialTCP connects to the target's command listener.
func DialTCP(addr string, timeout time.Duration) (*TCP, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	return &TCP{conn: conn}, nil
}

func (t *TCP) Send(cmds []string) error {
	for _, cmd := range cmds {
		if _, err := t.conn.Write(protocol.Line(cmd)); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}

func (t *TCP) Period() time.Duration { return tcpPeriod }

func (t *TCP) Close() error { return t.conn.Close() }
