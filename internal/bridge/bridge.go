// internal/bridge/bridge.go
package bridge

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hwbridge/cc1101-bridge/internal/dispatch"
	"github.com/hwbridge/cc1101-bridge/internal/line"
	"github.com/hwbridge/cc1101-bridge/internal/protocol"
	"github.com/hwbridge/cc1101-bridge/internal/status"
)

// Transport is the byte endpoint the bridge serves: best-effort
// receive plus line send. The line terminator belongs to the
// transport, not to the encoder.
type Transport interface {
	Receive(p []byte) (int, error)
	Send(p []byte) error
}

// DefaultReceiveTimeout is the per-cycle wait for a complete line.
const DefaultReceiveTimeout = 100 * time.Millisecond

// Config tunes the loop. Zero values select the defaults.
type Config struct {
	ReceiveTimeout time.Duration
	LineCapacity   int
	PollInterval   time.Duration
}

// Bridge runs the single-threaded command loop: one line is received,
// parsed, dispatched and answered before the next one is considered.
// Nothing here is safe for concurrent use, and nothing needs to be.
type Bridge struct {
	transport Transport
	backend   dispatch.Backend
	reader    *line.Reader
	timeout   time.Duration
	snap      status.Snapshot
}

// New returns a Bridge over the given transport and backend.
func New(t Transport, be dispatch.Backend, cfg Config) *Bridge {
	if cfg.ReceiveTimeout <= 0 {
		cfg.ReceiveTimeout = DefaultReceiveTimeout
	}
	return &Bridge{
		transport: t,
		backend:   be,
		reader: line.NewReader(t, line.ReaderConfig{
			Capacity:     cfg.LineCapacity,
			PollInterval: cfg.PollInterval,
		}),
		timeout: cfg.ReceiveTimeout,
		snap:    status.Snapshot{Health: status.HealthStarting, Text: "Waiting for commands..."},
	}
}

// Run processes commands until the context is cancelled or the
// transport fails. Cancellation is checked between receive cycles; a
// command in flight always runs to completion.
func (b *Bridge) Run(ctx context.Context) error {
	log.Info("Bridge loop started.")

	for {
		select {
		case <-ctx.Done():
			b.snap.Health = status.HealthStopped
			log.Info("Bridge loop stopped.")
			return nil
		default:
		}

		l, ok, err := b.reader.ReceiveLine(b.timeout)
		if err != nil {
			b.snap.Health = status.HealthStopped
			return err
		}
		if !ok {
			continue
		}

		b.ProcessLine(l)
	}
}

// ProcessLine handles exactly one request line: parse, dispatch,
// encode, send. Unparseable lines are answered with an invalid-JSON
// error and never reach the dispatcher.
func (b *Bridge) ProcessLine(l string) {
	log.Debugf("RX: %s", l)

	cmd := protocol.Parse(l)
	if cmd.Type == protocol.CmdUnknown {
		log.Warnf("Invalid JSON: %s", l)
		b.send(protocol.Error(protocol.ErrInvalidJSON, "Invalid JSON"))
		return
	}

	res, text := dispatch.Dispatch(cmd, b.backend)
	b.send(res)

	if res.Type != protocol.ResultError {
		b.snap.CommandsProcessed++
		b.snap.Health = status.HealthRunning
	}
	if text != "" {
		b.snap.Text = text
		log.Info(text)
	}
}

// Status returns the loop-owned snapshot.
func (b *Bridge) Status() status.Snapshot {
	return b.snap
}

func (b *Bridge) send(res protocol.Result) {
	out := protocol.Encode(res)
	log.Debugf("TX: %s", out)

	if err := b.transport.Send([]byte(out)); err != nil {
		log.Errorf("Error while sending response: %v", err)
	}
}
