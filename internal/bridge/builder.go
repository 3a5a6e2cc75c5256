// internal/bridge/builder.go
package bridge

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hwbridge/cc1101-bridge/internal/backend/memory"
	mb "github.com/hwbridge/cc1101-bridge/internal/backend/modbus"
	"github.com/hwbridge/cc1101-bridge/internal/config"
	"github.com/hwbridge/cc1101-bridge/internal/dispatch"
	"github.com/hwbridge/cc1101-bridge/internal/transport/serial"
	"github.com/hwbridge/cc1101-bridge/internal/transport/tcpserver"
)

// Build wires transport and backend from config and returns the ready
// Bridge plus a closer for both. Construction failure is fatal to
// startup; there is no lazy retry.
func Build(cfg *config.Config) (*Bridge, func() error, error) {
	b := cfg.Bridge

	// ---- transport ----

	var (
		transport Transport
		closeTr   func() error
	)

	switch b.Transport.Kind {
	case "serial":
		p, err := serial.Open(serial.Config{
			Device:   b.Transport.Device,
			BaudRate: b.Transport.BaudRate,
			DataBits: b.Transport.DataBits,
			StopBits: b.Transport.StopBits,
			Parity:   b.Transport.Parity,
		})
		if err != nil {
			return nil, nil, err
		}
		transport, closeTr = p, p.Close

	case "tcp":
		s, err := tcpserver.Listen(b.Transport.Endpoint)
		if err != nil {
			return nil, nil, err
		}
		transport, closeTr = s, s.Close

	default:
		return nil, nil, fmt.Errorf("bridge: unknown transport kind %q", b.Transport.Kind)
	}

	// ---- backend ----

	var (
		backend   dispatch.Backend
		closeBack = func() error { return nil }
	)

	switch b.Backend.Driver {
	case "memory":
		backend = memory.New()
		log.Info("Using in-memory register backend.")

	case "modbus":
		c, err := mb.New(mb.Config{
			Endpoint:    b.Backend.Modbus.Endpoint,
			UnitID:      b.Backend.Modbus.UnitID,
			BaseAddress: b.Backend.Modbus.BaseAddress,
			Timeout:     time.Duration(b.Backend.Modbus.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			closeTr()
			return nil, nil, err
		}
		backend = c
		closeBack = c.Close
		log.Infof("Using Modbus register backend at %s.", b.Backend.Modbus.Endpoint)

	default:
		closeTr()
		return nil, nil, fmt.Errorf("bridge: unknown backend driver %q", b.Backend.Driver)
	}

	br := New(transport, backend, Config{
		ReceiveTimeout: time.Duration(b.Receive.TimeoutMs) * time.Millisecond,
		LineCapacity:   b.Receive.LineBufferSize,
		PollInterval:   time.Duration(b.Receive.PollIntervalMs) * time.Millisecond,
	})

	closer := func() error {
		err := closeBack()
		if trErr := closeTr(); trErr != nil && err == nil {
			err = trErr
		}
		return err
	}

	return br, closer, nil
}
