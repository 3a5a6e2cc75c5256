// internal/backend/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/hwbridge/cc1101-bridge/internal/cc1101"
	"github.com/hwbridge/cc1101-bridge/internal/protocol"
)

// Client mirrors the CC1101 register file into Modbus holding
// registers: register addr maps to holding register base+addr, the PA
// table to base+PATableOffset. Used on benches where the register
// image lives in a PLC or simulator instead of real hardware.
//
// It serializes requests because the TCP handler is not safe for
// concurrent use.
type Client struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	client  modbus.Client
	base    uint16
}

// PATableOffset places the PA table just past the register file.
const PATableOffset uint16 = 0x30

type Config struct {
	Endpoint    string
	UnitID      uint8
	BaseAddress uint16
	Timeout     time.Duration
}

// New creates a connected client. Connection failure is fatal to
// startup; there is no lazy reconnect.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus backend: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
		base:    cfg.BaseAddress,
	}, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// WriteRegister writes one register value. Out-of-range addresses are
// rejected before anything goes on the wire.
func (c *Client) WriteRegister(addr, value uint8) error {
	if !cc1101.ValidAddress(addr) {
		return fmt.Errorf("modbus backend: register 0x%02X out of range", addr)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.client.WriteSingleRegister(c.base+uint16(addr), uint16(value))
	return err
}

// WriteBulk applies a set of register writes in order. The whole set
// is validated first so an invalid address rejects the set with no
// wire traffic at all.
func (c *Client) WriteBulk(pairs []protocol.RegisterPair) error {
	for _, p := range pairs {
		if !cc1101.ValidAddress(p.Addr) {
			return fmt.Errorf("modbus backend: register 0x%02X out of range", p.Addr)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range pairs {
		if _, err := c.client.WriteSingleRegister(c.base+uint16(p.Addr), uint16(p.Value)); err != nil {
			return err
		}
	}
	return nil
}

// WritePATable writes the zero-padded 8-entry PA table as one block.
func (c *Client) WritePATable(values []uint8) error {
	var full [cc1101.PATableSize]uint8
	copy(full[:], values)

	payload := make([]byte, 2*cc1101.PATableSize)
	for i, v := range full {
		payload[2*i] = 0
		payload[2*i+1] = v
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.client.WriteMultipleRegisters(
		c.base+PATableOffset,
		uint16(cc1101.PATableSize),
		payload,
	)
	return err
}

// ReadRegister reads one register value. Out-of-range addresses and
// wire failures both read as 0; the wire contract exposes no failure
// path for reads.
func (c *Client) ReadRegister(addr uint8) uint8 {
	if !cc1101.ValidAddress(addr) {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := c.client.ReadHoldingRegisters(c.base+uint16(addr), 1)
	if err != nil || len(raw) < 2 {
		return 0
	}
	return raw[1]
}
