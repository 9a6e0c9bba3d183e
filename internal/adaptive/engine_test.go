package adaptive

import (
	"testing"

	"gauntlet-service/internal/models"
)

func TestNextPromotionAndDemotion(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name          string
		current       models.Difficulty
		correctRun    int
		incorrectRun  int
		correct       bool
		wantDiff      models.Difficulty
		wantChanged   bool
		wantCorrect   int
		wantIncorrect int
	}{
		{"first correct at easy", models.DifficultyEasy, 0, 0, true, models.DifficultyEasy, false, 1, 0},
		{"second correct at easy", models.DifficultyEasy, 1, 0, true, models.DifficultyEasy, false, 2, 0},
		{"third correct promotes easy to medium", models.DifficultyEasy, 2, 0, true, models.DifficultyMedium, true, 0, 0},
		{"third correct promotes medium to hard", models.DifficultyMedium, 2, 1, true, models.DifficultyHard, true, 0, 0},
		{"first incorrect at medium", models.DifficultyMedium, 2, 0, false, models.DifficultyMedium, false, 0, 1},
		{"second incorrect demotes medium to easy", models.DifficultyMedium, 0, 1, false, models.DifficultyEasy, true, 0, 0},
		{"second incorrect demotes hard to medium", models.DifficultyHard, 0, 1, false, models.DifficultyMedium, true, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.Next(tc.current, tc.correctRun, tc.incorrectRun, tc.correct)
			if got.Difficulty != tc.wantDiff {
				t.Errorf("difficulty = %s, want %s", got.Difficulty, tc.wantDiff)
			}
			if got.Changed != tc.wantChanged {
				t.Errorf("changed = %v, want %v", got.Changed, tc.wantChanged)
			}
			if got.ConsecutiveCorrect != tc.wantCorrect {
				t.Errorf("consecutive correct = %d, want %d", got.ConsecutiveCorrect, tc.wantCorrect)
			}
			if got.ConsecutiveIncorrect != tc.wantIncorrect {
				t.Errorf("consecutive incorrect = %d, want %d", got.ConsecutiveIncorrect, tc.wantIncorrect)
			}
		})
	}
}

// At the boundaries the counters keep counting but the tier must not move.
func TestNextBoundaries(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("correct streak at hard stays hard", func(t *testing.T) {
		got := engine.Next(models.DifficultyHard, 2, 0, true)
		if got.Changed {
			t.Error("expected no change at the hard boundary")
		}
		if got.Difficulty != models.DifficultyHard {
			t.Errorf("difficulty = %s, want hard", got.Difficulty)
		}
		if got.ConsecutiveCorrect != 3 {
			t.Errorf("counter should keep incrementing, got %d", got.ConsecutiveCorrect)
		}
	})

	t.Run("incorrect streak at easy stays easy", func(t *testing.T) {
		got := engine.Next(models.DifficultyEasy, 0, 5, false)
		if got.Changed {
			t.Error("expected no change at the easy boundary")
		}
		if got.Difficulty != models.DifficultyEasy {
			t.Errorf("difficulty = %s, want easy", got.Difficulty)
		}
		if got.ConsecutiveIncorrect != 6 {
			t.Errorf("counter should keep incrementing, got %d", got.ConsecutiveIncorrect)
		}
	})
}

func TestNextResetsOppositeCounter(t *testing.T) {
	engine := NewEngine(nil)

	got := engine.Next(models.DifficultyMedium, 0, 1, true)
	if got.ConsecutiveIncorrect != 0 {
		t.Errorf("a correct answer must reset the incorrect run, got %d", got.ConsecutiveIncorrect)
	}

	got = engine.Next(models.DifficultyMedium, 2, 0, false)
	if got.ConsecutiveCorrect != 0 {
		t.Errorf("an incorrect answer must reset the correct run, got %d", got.ConsecutiveCorrect)
	}
}

func TestNextReasonText(t *testing.T) {
	engine := NewEngine(nil)

	got := engine.Next(models.DifficultyEasy, 2, 0, true)
	if got.Reason != "3 correct in a row" {
		t.Errorf("reason = %q, want %q", got.Reason, "3 correct in a row")
	}

	got = engine.Next(models.DifficultyHard, 0, 1, false)
	if got.Reason != "2 incorrect in a row" {
		t.Errorf("reason = %q, want %q", got.Reason, "2 incorrect in a row")
	}
}

func TestTimerDuration(t *testing.T) {
	if got := TimerDuration(models.DifficultyHard, models.QuestionCode); got != 240 {
		t.Errorf("hard code timer = %d, want 240", got)
	}
	if got := TimerDuration(models.DifficultyEasy, models.QuestionMCQ); got != 30 {
		t.Errorf("easy mcq timer = %d, want 30", got)
	}
	if got := TimerDuration(models.DifficultyMedium, models.QuestionDescription); got != defaultTimerSeconds {
		t.Errorf("unknown type should fall back to default, got %d", got)
	}
}
