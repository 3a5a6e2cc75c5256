// internal/protocol/result.go
package protocol

// ResultType identifies the three response shapes.
type ResultType int

const (
	ResultAck ResultType = iota
	ResultData
	ResultError
)

// ErrorCode enumerates the wire error taxonomy. Codes 3 and 4 are
// reserved: declared for the wire contract but never produced by the
// dispatcher (address failures surface as ErrWriteFailed).
type ErrorCode int

const (
	ErrInvalidJSON        ErrorCode = 1
	ErrUnknownCommand     ErrorCode = 2
	ErrInvalidAddress     ErrorCode = 3
	ErrDeviceNotAvailable ErrorCode = 4
	ErrWriteFailed        ErrorCode = 5
)

// Result is the outcome of one dispatched command. Constructed by the
// dispatcher (or the loop, for unparseable lines) and consumed
// immediately by the encoder.
type Result struct {
	Type    ResultType
	Value   uint8
	Code    ErrorCode
	Message string
}

// Ack reports a successful operation with no payload.
func Ack() Result {
	return Result{Type: ResultAck}
}

// Data reports a successful read.
func Data(value uint8) Result {
	return Result{Type: ResultData, Value: value}
}

// Error reports a recovered failure to the remote caller.
func Error(code ErrorCode, msg string) Result {
	return Result{Type: ResultError, Code: code, Message: msg}
}
