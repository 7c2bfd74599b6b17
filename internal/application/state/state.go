// Package state names the phases a level attempt goes through
package state

// GameState represents the current phase of a level attempt
type GameState int

const (
	StatePlaying GameState = iota
	StateLevelCleared
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateLevelCleared:
		return "LevelCleared"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
