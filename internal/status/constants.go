// internal/status/constants.go
package status

// Bridge status constants.

// ---- LIMITS ----

// TextMaxLen bounds the human-readable status text. Longer text is
// truncated at encode time, never rejected.
const TextMaxLen = 64

// ---- HEALTH CODES ----

// HealthStarting is the initial state before the first command.
const HealthStarting uint8 = 0

// HealthRunning means the loop is processing commands.
const HealthRunning uint8 = 1

// HealthStopped means the loop has exited.
const HealthStopped uint8 = 2
