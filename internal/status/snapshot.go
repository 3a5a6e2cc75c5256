// internal/status/snapshot.go
package status

// Snapshot is the loop-owned bridge state: the running counter of
// successfully processed commands and the last status text. It carries
// no logic and no memory beyond current state.
type Snapshot struct {
	Health            uint8
	CommandsProcessed uint64
	Text              string
}
