// internal/protocol/command.go
package protocol

// CommandType identifies one of the known wire commands.
type CommandType int

const (
	CmdUnknown CommandType = iota
	CmdWriteRegister
	CmdWriteBulk
	CmdReadRegister
	CmdPing
)

// MaxBulkRegisters caps the pairs accepted in one bulk write: one per
// valid register address. Entries beyond the cap are ignored by the
// parser, not rejected.
const MaxBulkRegisters = 47

// MaxPATableEntries is the fixed power-amplifier table size.
const MaxPATableEntries = 8

// RegisterPair is one (address, value) write. Duplicates within a bulk
// set are allowed; pairs are applied in parse order.
type RegisterPair struct {
	Addr  uint8
	Value uint8
}

// Command is the parsed form of one request line.
// It lives for exactly one request/response cycle.
type Command struct {
	Type CommandType

	// write_register / read_register
	Addr  uint8
	Value uint8

	// write_bulk
	Registers []RegisterPair
	PATable   []uint8
}
