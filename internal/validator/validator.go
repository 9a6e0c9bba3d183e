package validator

import (
	"context"
	"strconv"
	"strings"

	"gauntlet-service/internal/judge"
	"gauntlet-service/internal/models"
)

// Result grades one submitted answer. Feedback, when present, is safe to show
// to the player.
type Result struct {
	IsCorrect bool   `json:"is_correct"`
	Feedback  string `json:"feedback,omitempty"`
}

// Validator normalizes and grades answers, dispatching code questions to the
// judge. A nil runner means code execution is unavailable; code answers then
// grade incorrect with an execution-failure message rather than erroring out.
type Validator struct {
	judge judge.Runner
}

func New(runner judge.Runner) *Validator {
	return &Validator{judge: runner}
}

func (v *Validator) Validate(ctx context.Context, answer string, question *models.Question) Result {
	switch question.Type {
	case models.QuestionMCQ:
		return v.validateMCQ(answer, question)
	case models.QuestionInteger:
		return v.validateInteger(answer, question)
	case models.QuestionCode:
		return v.validateCode(ctx, answer, question)
	default:
		// No auto-grader exists for description questions; they are
		// manual-review-only and never score.
		return Result{Feedback: "This answer type is judged by mortal reviewers, not by me."}
	}
}

func (v *Validator) validateMCQ(answer string, question *models.Question) Result {
	return Result{IsCorrect: strings.TrimSpace(answer) == question.CorrectOption}
}

func (v *Validator) validateInteger(answer string, question *models.Question) Result {
	value, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err != nil {
		return Result{Feedback: "That is not a number, mortal."}
	}
	return Result{IsCorrect: value == float64(question.CorrectValue)}
}

func (v *Validator) validateCode(ctx context.Context, answer string, question *models.Question) Result {
	if v.judge == nil {
		return Result{Feedback: "Code execution failed: the judge is unavailable."}
	}
	verdict, err := v.judge.Run(ctx, answer, question.Language, question.TestCases)
	if err != nil {
		return Result{Feedback: "Code execution failed: " + err.Error()}
	}
	return Result{IsCorrect: verdict.AllPassed, Feedback: verdict.Feedback}
}
