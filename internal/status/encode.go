// internal/status/encode.go
package status

import "fmt"

// Encode renders a Snapshot as one display line.
// No IO. No side effects.
func Encode(s Snapshot) string {
	text := s.Text
	if len(text) > TextMaxLen {
		text = text[:TextMaxLen]
	}
	return fmt.Sprintf("health=%s commands=%d %s", healthName(s.Health), s.CommandsProcessed, text)
}

func healthName(h uint8) string {
	switch h {
	case HealthStarting:
		return "starting"
	case HealthRunning:
		return "running"
	case HealthStopped:
		return "stopped"
	}
	return "unknown"
}
