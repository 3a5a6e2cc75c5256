// internal/protocol/encode.go
package protocol

import "fmt"

// MaxResponseLen bounds one encoded response line. Error messages are
// truncated to fit; the JSON wrapper is never cut.
const MaxResponseLen = 256

const ackLine = `{"type":"ack","success":true}`

// Encode renders a Result as one response line. No line terminator is
// appended; that belongs to the transport.
func Encode(res Result) string {
	switch res.Type {
	case ResultAck:
		return ackLine
	case ResultData:
		return fmt.Sprintf(`{"type":"data","value":%d}`, res.Value)
	case ResultError:
		prefix := fmt.Sprintf(`{"type":"error","code":%d,"msg":"`, res.Code)
		const suffix = `"}`
		msg := res.Message
		if room := MaxResponseLen - len(prefix) - len(suffix); len(msg) > room {
			msg = msg[:room]
		}
		return prefix + msg + suffix
	}
	// Unreachable for well-formed results.
	return ackLine
}
