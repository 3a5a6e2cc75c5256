// internal/config/normalize.go
package config

// Reference sizing defaults.
const (
	DefaultBaudRate       = 115200
	DefaultDataBits       = 8
	DefaultStopBits       = 1
	DefaultParity         = "N"
	DefaultTimeoutMs      = 100
	DefaultPollIntervalMs = 10
	DefaultLineBufferSize = 1024
	DefaultModbusTimeout  = 1000
	DefaultLogLevel       = "info"
)

// Normalize applies post-validation defaulting.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	b := &cfg.Bridge

	if b.Transport.BaudRate == 0 {
		b.Transport.BaudRate = DefaultBaudRate
	}
	if b.Transport.DataBits == 0 {
		b.Transport.DataBits = DefaultDataBits
	}
	if b.Transport.StopBits == 0 {
		b.Transport.StopBits = DefaultStopBits
	}
	if b.Transport.Parity == "" {
		b.Transport.Parity = DefaultParity
	}

	if b.Receive.TimeoutMs == 0 {
		b.Receive.TimeoutMs = DefaultTimeoutMs
	}
	if b.Receive.PollIntervalMs == 0 {
		b.Receive.PollIntervalMs = DefaultPollIntervalMs
	}
	if b.Receive.LineBufferSize == 0 {
		b.Receive.LineBufferSize = DefaultLineBufferSize
	}

	if b.Backend.Driver == "" {
		b.Backend.Driver = "memory"
	}
	if b.Backend.Modbus.TimeoutMs == 0 {
		b.Backend.Modbus.TimeoutMs = DefaultModbusTimeout
	}

	if b.Log.Level == "" {
		b.Log.Level = DefaultLogLevel
	}
}
