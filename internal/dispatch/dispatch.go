// internal/dispatch/dispatch.go
package dispatch

import (
	"fmt"

	"github.com/hwbridge/cc1101-bridge/internal/protocol"
)

// Backend abstracts the register operations the dispatcher needs.
// Address range enforcement lives behind this interface: an
// out-of-range write comes back as a plain error, and an out-of-range
// read returns 0. No implementation is expected to be thread-safe;
// only the dispatcher touches it.
type Backend interface {
	WriteRegister(addr, value uint8) error
	WriteBulk(pairs []protocol.RegisterPair) error
	WritePATable(values []uint8) error
	ReadRegister(addr uint8) uint8
}

// Dispatch executes one parsed command against the backend and returns
// the wire result plus a short human-readable status text. It is a
// pure mapping: no retries, no state, no counter. The caller owns the
// commands-processed count.
//
// CmdUnknown never reaches this function in the normal flow (the loop
// maps it to an invalid-JSON error upstream); the guard below covers
// a misuse, not a wire case.
func Dispatch(cmd protocol.Command, be Backend) (protocol.Result, string) {
	switch cmd.Type {
	case protocol.CmdWriteRegister:
		if err := be.WriteRegister(cmd.Addr, cmd.Value); err != nil {
			return protocol.Error(protocol.ErrWriteFailed, "Write failed"), ""
		}
		return protocol.Ack(), fmt.Sprintf("Wrote 0x%02X->0x%02X", cmd.Addr, cmd.Value)

	case protocol.CmdWriteBulk:
		if err := be.WriteBulk(cmd.Registers); err != nil {
			return protocol.Error(protocol.ErrWriteFailed, "Bulk write failed"), ""
		}
		if len(cmd.PATable) > 0 {
			if err := be.WritePATable(cmd.PATable); err != nil {
				return protocol.Error(protocol.ErrWriteFailed, "Bulk write failed"), ""
			}
		}
		return protocol.Ack(), fmt.Sprintf("Bulk: %d regs", len(cmd.Registers))

	case protocol.CmdReadRegister:
		// Reads never fail at this layer; out-of-range reads are
		// defined to return 0 from the backend.
		value := be.ReadRegister(cmd.Addr)
		return protocol.Data(value), fmt.Sprintf("Read 0x%02X=0x%02X", cmd.Addr, value)

	case protocol.CmdPing:
		return protocol.Ack(), "Ping OK"
	}

	return protocol.Error(protocol.ErrUnknownCommand, "Unknown command"), ""
}
