package transport

import (
	"fmt"
	"time"

	"github.com/google/gousb"

	"github.com/padrelay/padrelay/internal/protocol"
)

const (
	// The target presents itself as a Nintendo Switch in controller
	// emulation mode.
	targetVendor  gousb.ID = 0x057e
	targetProduct gousb.ID = 0x3000

	// usbOutEndpoint is the bulk-out endpoint the emulation service
	// reads commands from.
	usbOutEndpoint = 1

	// usbPeriod is the USB tick period; shorter than the network period
	// since the bulk pipe has negligible latency.
	usbPeriod = 66 * time.Millisecond
)

// USB sends commands as length-prefixed binary frames over the target's
// bulk-out endpoint.
type USB struct {
	ctx     *gousb.Context
	dev     *gousb.Device
	release func()
	out     *gousb.OutEndpoint
}

// OpenUSB locates the target device, resets it and claims its command
// interface. Any failure here is a setup failure: the caller reports it and
// exits before the tick loop starts.
func OpenUSB() (*USB, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(targetVendor, targetProduct)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("open device: %w", err)
	}
	if dev == nil {
		ctx.Close()
		return nil, fmt.Errorf("no device %s:%s found", targetVendor, targetProduct)
	}

	if err := dev.Reset(); err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("reset device: %w", err)
	}
	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("auto detach: %w", err)
	}

	intf, release, err := dev.DefaultInterface()
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("claim interface: %w", err)
	}

	out, err := intf.OutEndpoint(usbOutEndpoint)
	if err != nil {
		release()
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("out endpoint: %w", err)
	}

	return &USB{ctx: ctx, dev: dev, release: release, out: out}, nil
}

// Send writes each command as two ordered bulk transfers (length prefix,
// then payload) and waits for every completion before returning.
func (u *USB) Send(cmds []string) error {
	for _, cmd := range cmds {
		prefix, payload := protocol.Frame(cmd)
		if _, err := u.out.Write(prefix); err != nil {
			return fmt.Errorf("bulk write: %w", err)
		}
		if _, err := u.out.Write(payload); err != nil {
			return fmt.Errorf("bulk write: %w", err)
		}
	}
	return nil
}

func (u *USB) Period() time.Duration { return usbPeriod }

func (u *USB) Close() error {
	u.release()
	if err := u.dev.Close(); err != nil {
		u.ctx.Close()
		return err
	}
	return u.ctx.Close()
}
