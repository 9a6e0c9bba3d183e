package dialogue

import (
	"strings"
	"testing"

	"gauntlet-service/internal/models"
)

func TestForAnswerAlwaysReturnsText(t *testing.T) {
	for _, difficulty := range []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
		for _, correct := range []bool{true, false} {
			line := ForAnswer(correct, difficulty)
			if line.Text == "" {
				t.Errorf("empty line for correct=%v difficulty=%s", correct, difficulty)
			}
		}
	}
}

func TestForAnswerUnknownDifficultyFallsBack(t *testing.T) {
	line := ForAnswer(true, models.Difficulty("nightmare"))
	if line.Text == "" {
		t.Error("unknown difficulty must still produce a line")
	}
}

func TestForTimeout(t *testing.T) {
	line := ForTimeout(models.DifficultyHard, models.QuestionCode)
	if !strings.Contains(line.Text, "Four minutes") {
		t.Errorf("unexpected hard/code timeout line: %q", line.Text)
	}
	if line.AudioURL == "" {
		t.Error("timeout lines carry audio references")
	}

	fallback := ForTimeout(models.DifficultyEasy, models.QuestionDescription)
	if fallback != genericTimeout {
		t.Error("unmapped type should use the generic timeout line")
	}
}

func TestForDifficultyChange(t *testing.T) {
	up := ForDifficultyChange(models.DifficultyEasy, models.DifficultyMedium, "3 correct in a row")
	if !strings.Contains(up.Text, "medium") || !strings.Contains(up.Text, "3 correct in a row") {
		t.Errorf("promotion line should name the tier and reason: %q", up.Text)
	}

	down := ForDifficultyChange(models.DifficultyHard, models.DifficultyMedium, "2 incorrect in a row")
	if !strings.Contains(down.Text, "medium") {
		t.Errorf("demotion line should name the new tier: %q", down.Text)
	}
}
