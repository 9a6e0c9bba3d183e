package adaptive

import (
	"fmt"

	"gauntlet-service/internal/models"
)

// Engine decides difficulty transitions from rolling correctness counters.
// It is purely functional: everything it needs arrives as arguments and
// everything it decides is returned in the Transition.
type Engine struct {
	config *Config
}

// NewEngine creates an engine, falling back to the default config.
func NewEngine(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{config: config}
}

// Next applies one answered question to the consecutive counters and decides
// whether the next question's difficulty rises, falls, or stays. At the tier
// boundaries the counters keep incrementing but no change occurs.
func (e *Engine) Next(current models.Difficulty, consecutiveCorrect, consecutiveIncorrect int, correct bool) Transition {
	t := Transition{Difficulty: current}

	if correct {
		streak := consecutiveCorrect + 1
		if streak >= e.config.RiseThreshold && current != models.DifficultyHard {
			t.Difficulty = promote(current)
			t.Changed = true
			t.Reason = fmt.Sprintf("%d correct in a row", streak)
			streak = 0
		}
		t.ConsecutiveCorrect = streak
		return t
	}

	streak := consecutiveIncorrect + 1
	if streak >= e.config.DropThreshold && current != models.DifficultyEasy {
		t.Difficulty = demote(current)
		t.Changed = true
		t.Reason = fmt.Sprintf("%d incorrect in a row", streak)
		streak = 0
	}
	t.ConsecutiveIncorrect = streak
	return t
}

func promote(d models.Difficulty) models.Difficulty {
	switch d {
	case models.DifficultyEasy:
		return models.DifficultyMedium
	case models.DifficultyMedium:
		return models.DifficultyHard
	}
	return d
}

func demote(d models.Difficulty) models.Difficulty {
	switch d {
	case models.DifficultyHard:
		return models.DifficultyMedium
	case models.DifficultyMedium:
		return models.DifficultyEasy
	}
	return d
}
