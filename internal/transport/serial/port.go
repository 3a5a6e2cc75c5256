// internal/transport/serial/port.go
package serial

import (
	"errors"
	"time"

	"github.com/goburrow/serial"
	log "github.com/sirupsen/logrus"
)

// Port adapts a serial device to the bridge's byte transport contract:
// best-effort receive, line-terminated send. The driver's read timeout
// is kept short so Receive approximates "bytes available now".
type Port struct {
	port serial.Port
}

type Config struct {
	Device   string
	BaudRate int
	DataBits int
	StopBits int
	Parity   string
}

// readTimeout bounds one Receive call; a timeout means "no bytes".
const readTimeout = 5 * time.Millisecond

// Open opens the serial device.
func Open(cfg Config) (*Port, error) {
	if cfg.Device == "" {
		return nil, errors.New("serial transport: device required")
	}

	p, err := serial.Open(&serial.Config{
		Address:  cfg.Device,
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		StopBits: cfg.StopBits,
		Parity:   cfg.Parity,
		Timeout:  readTimeout,
	})
	if err != nil {
		return nil, err
	}

	log.Infof("Serial transport open on %s (%d baud).", cfg.Device, cfg.BaudRate)

	return &Port{port: p}, nil
}

// Receive reads whatever is available, returning (0, nil) when nothing
// arrived within the driver timeout.
func (p *Port) Receive(buf []byte) (int, error) {
	n, err := p.port.Read(buf)
	if err != nil {
		if errors.Is(err, serial.ErrTimeout) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

// Send writes one response line followed by its terminator.
func (p *Port) Send(data []byte) error {
	if _, err := p.port.Write(data); err != nil {
		return err
	}
	_, err := p.port.Write([]byte{'\n'})
	return err
}

// Close closes the device.
func (p *Port) Close() error {
	return p.port.Close()
}
