// internal/dispatch/dispatch_test.go
package dispatch

import (
	"errors"
	"testing"

	"github.com/hwbridge/cc1101-bridge/internal/protocol"
)

// ---- fake backend ----

type fakeBackend struct {
	failWrites   bool
	failBulk     bool
	failPATable  bool
	readValue    uint8
	writes       []protocol.RegisterPair
	bulkCalls    int
	paTableCalls int
	reads        []uint8
}

func (f *fakeBackend) WriteRegister(addr, value uint8) error {
	if f.failWrites {
		return errors.New("write rejected")
	}
	f.writes = append(f.writes, protocol.RegisterPair{Addr: addr, Value: value})
	return nil
}

func (f *fakeBackend) WriteBulk(pairs []protocol.RegisterPair) error {
	f.bulkCalls++
	if f.failBulk {
		return errors.New("bulk rejected")
	}
	f.writes = append(f.writes, pairs...)
	return nil
}

func (f *fakeBackend) WritePATable(values []uint8) error {
	f.paTableCalls++
	if f.failPATable {
		return errors.New("patable rejected")
	}
	return nil
}

func (f *fakeBackend) ReadRegister(addr uint8) uint8 {
	f.reads = append(f.reads, addr)
	return f.readValue
}

// ---- tests ----

func TestDispatch_WriteRegisterAck(t *testing.T) {
	be := &fakeBackend{}
	res, status := Dispatch(protocol.Command{
		Type: protocol.CmdWriteRegister, Addr: 0x0F, Value: 0xC8,
	}, be)

	if res.Type != protocol.ResultAck {
		t.Fatalf("expected ack, got %+v", res)
	}
	if status != "Wrote 0x0F->0xC8" {
		t.Fatalf("unexpected status: %q", status)
	}
	if len(be.writes) != 1 || be.writes[0] != (protocol.RegisterPair{Addr: 0x0F, Value: 0xC8}) {
		t.Fatalf("unexpected backend writes: %+v", be.writes)
	}
}

func TestDispatch_WriteRegisterFailure(t *testing.T) {
	be := &fakeBackend{failWrites: true}
	res, status := Dispatch(protocol.Command{
		Type: protocol.CmdWriteRegister, Addr: 99, Value: 1,
	}, be)

	if res.Type != protocol.ResultError || res.Code != protocol.ErrWriteFailed {
		t.Fatalf("expected write-failed error, got %+v", res)
	}
	if res.Message != "Write failed" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if status != "" {
		t.Fatalf("failure must not produce status text, got %q", status)
	}
}

func TestDispatch_WriteBulkWithPATable(t *testing.T) {
	be := &fakeBackend{}
	res, status := Dispatch(protocol.Command{
		Type:      protocol.CmdWriteBulk,
		Registers: []protocol.RegisterPair{{Addr: 0, Value: 1}, {Addr: 1, Value: 2}},
		PATable:   []uint8{0xC0},
	}, be)

	if res.Type != protocol.ResultAck {
		t.Fatalf("expected ack, got %+v", res)
	}
	if be.bulkCalls != 1 || be.paTableCalls != 1 {
		t.Fatalf("expected bulk+patable calls, got bulk=%d pa=%d", be.bulkCalls, be.paTableCalls)
	}
	if status != "Bulk: 2 regs" {
		t.Fatalf("unexpected status: %q", status)
	}
}

func TestDispatch_WriteBulkSkipsEmptyPATable(t *testing.T) {
	be := &fakeBackend{}
	res, _ := Dispatch(protocol.Command{
		Type:      protocol.CmdWriteBulk,
		Registers: []protocol.RegisterPair{{Addr: 5, Value: 5}},
	}, be)

	if res.Type != protocol.ResultAck {
		t.Fatalf("expected ack, got %+v", res)
	}
	if be.paTableCalls != 0 {
		t.Fatalf("patable must not be written when empty, calls=%d", be.paTableCalls)
	}
}

func TestDispatch_WriteBulkFailureAborts(t *testing.T) {
	be := &fakeBackend{failBulk: true}
	res, _ := Dispatch(protocol.Command{
		Type:      protocol.CmdWriteBulk,
		Registers: []protocol.RegisterPair{{Addr: 0, Value: 1}},
		PATable:   []uint8{1},
	}, be)

	if res.Type != protocol.ResultError || res.Code != protocol.ErrWriteFailed {
		t.Fatalf("expected write-failed error, got %+v", res)
	}
	if res.Message != "Bulk write failed" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if be.paTableCalls != 0 {
		t.Fatal("patable written after failed bulk write")
	}
}

func TestDispatch_PATableFailure(t *testing.T) {
	be := &fakeBackend{failPATable: true}
	res, _ := Dispatch(protocol.Command{
		Type:      protocol.CmdWriteBulk,
		Registers: []protocol.RegisterPair{{Addr: 0, Value: 1}},
		PATable:   []uint8{1},
	}, be)

	if res.Type != protocol.ResultError || res.Code != protocol.ErrWriteFailed {
		t.Fatalf("expected write-failed error, got %+v", res)
	}
}

func TestDispatch_ReadRegisterNeverFails(t *testing.T) {
	be := &fakeBackend{readValue: 0x3C}
	res, status := Dispatch(protocol.Command{
		Type: protocol.CmdReadRegister, Addr: 10,
	}, be)

	if res.Type != protocol.ResultData || res.Value != 0x3C {
		t.Fatalf("expected data 0x3C, got %+v", res)
	}
	if status != "Read 0x0A=0x3C" {
		t.Fatalf("unexpected status: %q", status)
	}
}

func TestDispatch_PingHasNoSideEffects(t *testing.T) {
	be := &fakeBackend{}
	res, status := Dispatch(protocol.Command{Type: protocol.CmdPing}, be)

	if res.Type != protocol.ResultAck {
		t.Fatalf("expected ack, got %+v", res)
	}
	if status != "Ping OK" {
		t.Fatalf("unexpected status: %q", status)
	}
	if len(be.writes) != 0 || len(be.reads) != 0 || be.bulkCalls != 0 || be.paTableCalls != 0 {
		t.Fatalf("ping touched the backend: %+v", be)
	}
}

func TestDispatch_UnknownGuard(t *testing.T) {
	be := &fakeBackend{}
	res, _ := Dispatch(protocol.Command{Type: protocol.CmdUnknown}, be)

	if res.Type != protocol.ResultError || res.Code != protocol.ErrUnknownCommand {
		t.Fatalf("expected unknown-command error, got %+v", res)
	}
}
