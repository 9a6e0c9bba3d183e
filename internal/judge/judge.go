package judge

import (
	"context"
	"fmt"

	"gauntlet-service/internal/models"
)

// Verdict is the outcome of running submitted code against a question's
// test cases.
type Verdict struct {
	AllPassed bool     `json:"all_passed"`
	Passed    int      `json:"passed"`
	Total     int      `json:"total"`
	Feedback  string   `json:"feedback"`
	CaseNotes []string `json:"case_notes,omitempty"`
}

// Runner executes submitted source code against test cases.
type Runner interface {
	Run(ctx context.Context, source, language string, cases []models.TestCase) (*Verdict, error)
}

func summarize(passed, total int, firstFailure string) string {
	if passed == total {
		return fmt.Sprintf("%d/%d test cases passed", passed, total)
	}
	if firstFailure != "" {
		return fmt.Sprintf("%d/%d test cases passed. First failure: %s", passed, total, firstFailure)
	}
	return fmt.Sprintf("%d/%d test cases passed", passed, total)
}
