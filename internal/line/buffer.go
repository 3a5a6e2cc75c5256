// internal/line/buffer.go
package line

// DefaultCapacity is the reference accumulator size.
const DefaultCapacity = 1024

// Buffer reassembles a byte stream into CR/LF-terminated lines using a
// fixed-capacity accumulator.
//
// Bounded memory wins over completeness: when the accumulator fills
// before a terminator arrives, the whole partial line is discarded.
// No truncated line is ever emitted. The drop is reported to the
// caller as a count so the boundary can log it; the wire stays silent.
type Buffer struct {
	buf []byte
	cap int
}

// NewBuffer returns a Buffer with the given capacity. A capacity of
// zero or less falls back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		buf: make([]byte, 0, capacity),
		cap: capacity,
	}
}

// Feed appends a burst of bytes and returns the complete lines it
// finished, plus the number of overflow drops.
//
// A CR or LF flushes the accumulator only when it is non-empty, so a
// lone terminator (or the second half of "\r\n") is absorbed without
// emitting an empty line. A byte arriving with the accumulator full
// clears the accumulator and is itself discarded.
func (b *Buffer) Feed(p []byte) (lines []string, dropped int) {
	for _, c := range p {
		switch {
		case c == '\n' || c == '\r':
			if len(b.buf) > 0 {
				lines = append(lines, string(b.buf))
				b.buf = b.buf[:0]
			}
		case len(b.buf) < b.cap-1:
			b.buf = append(b.buf, c)
		default:
			b.buf = b.buf[:0]
			dropped++
		}
	}
	return lines, dropped
}

// Pending reports the number of bytes accumulated toward an unfinished
// line.
func (b *Buffer) Pending() int {
	return len(b.buf)
}
