// internal/protocol/parse_test.go
package protocol

import (
	"fmt"
	"strings"
	"testing"
)

func TestParse_Ping(t *testing.T) {
	cmd := Parse(`{"cmd":"ping"}`)
	if cmd.Type != CmdPing {
		t.Fatalf("expected CmdPing, got %v", cmd.Type)
	}
}

func TestParse_WriteRegister(t *testing.T) {
	cmd := Parse(`{"cmd":"write_register","addr":15,"value":200}`)
	if cmd.Type != CmdWriteRegister {
		t.Fatalf("expected CmdWriteRegister, got %v", cmd.Type)
	}
	if cmd.Addr != 15 || cmd.Value != 200 {
		t.Fatalf("expected addr=15 value=200, got addr=%d value=%d", cmd.Addr, cmd.Value)
	}
}

func TestParse_FieldOrderIrrelevant(t *testing.T) {
	cmd := Parse(`{"value": 7, "extra":"x", "cmd": "write_register", "addr": 3}`)
	if cmd.Type != CmdWriteRegister {
		t.Fatalf("expected CmdWriteRegister, got %v", cmd.Type)
	}
	if cmd.Addr != 3 || cmd.Value != 7 {
		t.Fatalf("expected addr=3 value=7, got addr=%d value=%d", cmd.Addr, cmd.Value)
	}
}

func TestParse_MissingFieldsDefaultZero(t *testing.T) {
	cmd := Parse(`{"cmd":"write_register"}`)
	if cmd.Type != CmdWriteRegister {
		t.Fatalf("expected CmdWriteRegister, got %v", cmd.Type)
	}
	if cmd.Addr != 0 || cmd.Value != 0 {
		t.Fatalf("expected zero fields, got addr=%d value=%d", cmd.Addr, cmd.Value)
	}
}

func TestParse_IntegerTruncation(t *testing.T) {
	// Values >= 256 wrap to 8 bits at parse time, never rejected.
	cmd := Parse(`{"cmd":"write_register","addr":300,"value":-1}`)
	if cmd.Addr != 44 { // 300 mod 256
		t.Fatalf("expected addr=44, got %d", cmd.Addr)
	}
	if cmd.Value != 255 {
		t.Fatalf("expected value=255, got %d", cmd.Value)
	}
}

func TestParse_ReadRegister(t *testing.T) {
	cmd := Parse(`{"cmd":"read_register","addr":10}`)
	if cmd.Type != CmdReadRegister {
		t.Fatalf("expected CmdReadRegister, got %v", cmd.Type)
	}
	if cmd.Addr != 10 {
		t.Fatalf("expected addr=10, got %d", cmd.Addr)
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, line := range []string{
		`not json at all`,
		`{"cmd":"reboot"}`,
		`{"command":"ping"}`,
		`{"cmd"}`,
		``,
	} {
		if cmd := Parse(line); cmd.Type != CmdUnknown {
			t.Fatalf("line %q: expected CmdUnknown, got %v", line, cmd.Type)
		}
	}
}

func TestParse_CaseSensitive(t *testing.T) {
	if cmd := Parse(`{"cmd":"PING"}`); cmd.Type != CmdUnknown {
		t.Fatalf("expected CmdUnknown for uppercase command, got %v", cmd.Type)
	}
}

func TestParse_WriteBulk(t *testing.T) {
	line := `{"cmd":"write_bulk","registers":{"0":41,"1":46,"16":7},"pa_table":[0,192]}`
	cmd := Parse(line)
	if cmd.Type != CmdWriteBulk {
		t.Fatalf("expected CmdWriteBulk, got %v", cmd.Type)
	}
	want := []RegisterPair{{0, 41}, {1, 46}, {16, 7}}
	if len(cmd.Registers) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(cmd.Registers))
	}
	for i, p := range want {
		if cmd.Registers[i] != p {
			t.Fatalf("pair %d: expected %+v, got %+v", i, p, cmd.Registers[i])
		}
	}
	if len(cmd.PATable) != 2 || cmd.PATable[0] != 0 || cmd.PATable[1] != 192 {
		t.Fatalf("unexpected pa_table: %v", cmd.PATable)
	}
}

func TestParse_WriteBulkCapsAt47(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"cmd":"write_bulk","registers":{`)
	for i := 0; i < 50; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `"%d":%d`, i, i)
	}
	sb.WriteString(`}}`)

	cmd := Parse(sb.String())
	if len(cmd.Registers) != MaxBulkRegisters {
		t.Fatalf("expected %d pairs, got %d", MaxBulkRegisters, len(cmd.Registers))
	}
	if cmd.Registers[46].Addr != 46 || cmd.Registers[46].Value != 46 {
		t.Fatalf("unexpected last pair: %+v", cmd.Registers[46])
	}
}

func TestParse_PATableCapsAt8(t *testing.T) {
	cmd := Parse(`{"cmd":"write_bulk","registers":{},"pa_table":[1,2,3,4,5,6,7,8,9,10]}`)
	if len(cmd.PATable) != MaxPATableEntries {
		t.Fatalf("expected %d entries, got %d", MaxPATableEntries, len(cmd.PATable))
	}
	if cmd.PATable[7] != 8 {
		t.Fatalf("expected last entry 8, got %d", cmd.PATable[7])
	}
}

func TestParse_WriteBulkMissingSections(t *testing.T) {
	cmd := Parse(`{"cmd":"write_bulk"}`)
	if cmd.Type != CmdWriteBulk {
		t.Fatalf("expected CmdWriteBulk, got %v", cmd.Type)
	}
	if len(cmd.Registers) != 0 || len(cmd.PATable) != 0 {
		t.Fatalf("expected empty sections, got regs=%v pa=%v", cmd.Registers, cmd.PATable)
	}
}

func TestParse_DuplicateBulkAddresses(t *testing.T) {
	// Duplicates are kept in parse order; last-write-wins is the
	// backend's business, not the parser's.
	cmd := Parse(`{"cmd":"write_bulk","registers":{"5":1,"5":2}}`)
	if len(cmd.Registers) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(cmd.Registers))
	}
	if cmd.Registers[0].Value != 1 || cmd.Registers[1].Value != 2 {
		t.Fatalf("unexpected pairs: %+v", cmd.Registers)
	}
}

func TestParse_SurroundingTextTolerated(t *testing.T) {
	cmd := Parse(`garbage before {"cmd":"read_register","addr":12} garbage after`)
	if cmd.Type != CmdReadRegister || cmd.Addr != 12 {
		t.Fatalf("expected read of addr 12, got %+v", cmd)
	}
}
