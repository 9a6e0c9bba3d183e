package adaptive

import "gauntlet-service/internal/models"

// Config holds the thresholds driving difficulty transitions.
type Config struct {
	// RiseThreshold is how many consecutive correct answers promote a tier.
	RiseThreshold int
	// DropThreshold is how many consecutive incorrect answers demote a tier.
	DropThreshold int
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() *Config {
	return &Config{
		RiseThreshold: 3,
		DropThreshold: 2,
	}
}

// Transition is the outcome of one adaptation step. The session state machine
// persists the returned counters back onto the session.
type Transition struct {
	Difficulty           models.Difficulty `json:"difficulty"`
	ConsecutiveCorrect   int               `json:"consecutive_correct"`
	ConsecutiveIncorrect int               `json:"consecutive_incorrect"`
	Changed              bool              `json:"changed"`
	Reason               string            `json:"reason,omitempty"`
}
