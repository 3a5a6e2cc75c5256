// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	b := cfg.Bridge

	// ------------------------------------------------------------
	// TRANSPORT
	// ------------------------------------------------------------

	switch b.Transport.Kind {
	case "serial":
		if b.Transport.Device == "" {
			return fmt.Errorf("transport: serial requires a device")
		}
	case "tcp":
		if b.Transport.Endpoint == "" {
			return fmt.Errorf("transport: tcp requires an endpoint")
		}
	case "":
		return fmt.Errorf("transport: kind required (serial or tcp)")
	default:
		return fmt.Errorf("transport: unknown kind %q", b.Transport.Kind)
	}

	if b.Transport.BaudRate < 0 {
		return fmt.Errorf("transport: baud_rate must not be negative")
	}

	// ------------------------------------------------------------
	// RECEIVE
	// ------------------------------------------------------------

	if b.Receive.TimeoutMs < 0 {
		return fmt.Errorf("receive: timeout_ms must not be negative")
	}
	if b.Receive.PollIntervalMs < 0 {
		return fmt.Errorf("receive: poll_interval_ms must not be negative")
	}
	if b.Receive.LineBufferSize < 0 {
		return fmt.Errorf("receive: line_buffer_size must not be negative")
	}

	// ------------------------------------------------------------
	// BACKEND
	// ------------------------------------------------------------

	switch b.Backend.Driver {
	case "memory", "":
		// memory needs nothing
	case "modbus":
		if b.Backend.Modbus.Endpoint == "" {
			return fmt.Errorf("backend: modbus requires an endpoint")
		}
	default:
		return fmt.Errorf("backend: unknown driver %q", b.Backend.Driver)
	}

	return nil
}
