// internal/line/reader.go
package line

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// ByteSource is the receive half of the transport contract:
// best-effort, non-blocking availability. A return of (0, nil) means
// nothing ready yet.
type ByteSource interface {
	Receive(p []byte) (int, error)
}

// DefaultPollInterval is the fixed retry interval of the receive loop.
const DefaultPollInterval = 10 * time.Millisecond

// DefaultChunkSize is the per-poll read buffer size.
const DefaultChunkSize = 512

// ReaderConfig tunes a Reader. Zero values select the defaults.
type ReaderConfig struct {
	Capacity     int
	PollInterval time.Duration
	ChunkSize    int
}

// Reader turns a ByteSource into a blocking line receiver with a
// bounded busy-poll, the only suspension point of the bridge loop.
type Reader struct {
	src     ByteSource
	buf     *Buffer
	chunk   []byte
	poll    time.Duration
	pending []string
}

// NewReader returns a Reader over src.
func NewReader(src ByteSource, cfg ReaderConfig) *Reader {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	return &Reader{
		src:   src,
		buf:   NewBuffer(cfg.Capacity),
		chunk: make([]byte, cfg.ChunkSize),
		poll:  cfg.PollInterval,
	}
}

// ReceiveLine blocks until one complete line is available or the
// timeout elapses. ok=false with a nil error is a timeout; that is
// "nothing ready yet", not a failure. A non-nil error is a transport
// failure.
func (r *Reader) ReceiveLine(timeout time.Duration) (string, bool, error) {
	deadline := time.Now().Add(timeout)

	for {
		if len(r.pending) > 0 {
			line := r.pending[0]
			r.pending = r.pending[1:]
			return line, true, nil
		}

		n, err := r.src.Receive(r.chunk)
		if err != nil {
			return "", false, err
		}
		if n > 0 {
			lines, dropped := r.buf.Feed(r.chunk[:n])
			if dropped > 0 {
				log.Warnf("Line buffer overflow, %d partial line(s) dropped.", dropped)
			}
			r.pending = append(r.pending, lines...)
			continue
		}

		if !time.Now().Before(deadline) {
			return "", false, nil
		}
		time.Sleep(r.poll)
	}
}
