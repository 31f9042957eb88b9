package state

// GameState represents the current state of the gameplay scene.
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
)

// String returns the state name.
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
