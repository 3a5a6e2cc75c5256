// internal/backend/memory/memory.go
package memory

import (
	"fmt"

	"github.com/hwbridge/cc1101-bridge/internal/cc1101"
	"github.com/hwbridge/cc1101-bridge/internal/protocol"
)

// Image is an in-memory register backend: the full CC1101 register
// file plus the PA table, with the reference backend's validation
// contract. It serves loopback/bench configurations and tests.
type Image struct {
	regs [cc1101.RegisterCount]uint8
	pa   [cc1101.PATableSize]uint8
}

// New returns a zeroed register image.
func New() *Image {
	return &Image{}
}

// WriteRegister stores one register value. Out-of-range addresses are
// rejected before anything is applied.
func (m *Image) WriteRegister(addr, value uint8) error {
	if !cc1101.ValidAddress(addr) {
		return fmt.Errorf("memory backend: register 0x%02X out of range", addr)
	}
	m.regs[addr] = value
	return nil
}

// WriteBulk applies a set of register writes in order. The whole set
// is validated first: any out-of-range address rejects the set with
// nothing applied.
func (m *Image) WriteBulk(pairs []protocol.RegisterPair) error {
	for _, p := range pairs {
		if !cc1101.ValidAddress(p.Addr) {
			return fmt.Errorf("memory backend: register 0x%02X out of range", p.Addr)
		}
	}
	for _, p := range pairs {
		m.regs[p.Addr] = p.Value
	}
	return nil
}

// WritePATable replaces the PA table. Missing trailing entries are
// zero; surplus entries are ignored.
func (m *Image) WritePATable(values []uint8) error {
	var full [cc1101.PATableSize]uint8
	copy(full[:], values)
	m.pa = full
	return nil
}

// ReadRegister returns the stored value, or 0 for an out-of-range
// address. Reads do not fail.
func (m *Image) ReadRegister(addr uint8) uint8 {
	if !cc1101.ValidAddress(addr) {
		return 0
	}
	return m.regs[addr]
}

// PATable returns a copy of the current PA table.
func (m *Image) PATable() [cc1101.PATableSize]uint8 {
	return m.pa
}
