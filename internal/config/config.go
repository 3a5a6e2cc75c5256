// internal/config/config.go
package config

type Config struct {
	Bridge BridgeConfig `yaml:"bridge"`
}

type BridgeConfig struct {
	Transport TransportConfig `yaml:"transport"`
	Receive   ReceiveConfig   `yaml:"receive"`
	Backend   BackendConfig   `yaml:"backend"`
	Log       LogConfig       `yaml:"log"`
}

// ---- TRANSPORT ----

type TransportConfig struct {
	Kind string `yaml:"kind"` // "serial" or "tcp"

	// serial
	Device   string `yaml:"device"`
	BaudRate int    `yaml:"baud_rate"`
	DataBits int    `yaml:"data_bits"`
	StopBits int    `yaml:"stop_bits"`
	Parity   string `yaml:"parity"`

	// tcp
	Endpoint string `yaml:"endpoint"`
}

// ---- RECEIVE ----

type ReceiveConfig struct {
	TimeoutMs      int `yaml:"timeout_ms"`
	PollIntervalMs int `yaml:"poll_interval_ms"`
	LineBufferSize int `yaml:"line_buffer_size"`
}

// ---- BACKEND ----

type BackendConfig struct {
	Driver string       `yaml:"driver"` // "memory" or "modbus"
	Modbus ModbusConfig `yaml:"modbus"`
}

type ModbusConfig struct {
	Endpoint    string `yaml:"endpoint"`
	UnitID      uint8  `yaml:"unit_id"`
	BaseAddress uint16 `yaml:"base_address"`
	TimeoutMs   int    `yaml:"timeout_ms"`
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
}
