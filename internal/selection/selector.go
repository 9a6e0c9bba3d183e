// Package selection picks unseen questions for a running session, keeping the
// exclusion bookkeeping out of the state machine.
package selection

import (
	"context"

	"gauntlet-service/internal/models"
)

// QuestionSource is the slice of the question repository the selector needs.
type QuestionSource interface {
	Sample(ctx context.Context, subject, subTopic string, difficulty models.Difficulty, excludeIDs []string) (*models.Question, error)
	FindForDrill(ctx context.Context, subject, subTopic string, limit int) ([]models.Question, error)
}

const drillSize = 5

type Selector struct {
	questions QuestionSource
}

func NewSelector(questions QuestionSource) *Selector {
	return &Selector{questions: questions}
}

// NextQuestion draws a random question at the session's current difficulty
// that the session has not seen. A nil question without error means the pool
// is exhausted; the caller ends the session gracefully.
func (s *Selector) NextQuestion(ctx context.Context, session *models.GauntletSession) (*models.Question, error) {
	return s.questions.Sample(ctx, session.Subject, session.SubTopic, session.CurrentDifficulty, session.QuestionHistory)
}

// DrillQuestions fetches the question set for a weakness drill.
func (s *Selector) DrillQuestions(ctx context.Context, subject, subTopic string) ([]models.Question, error) {
	return s.questions.FindForDrill(ctx, subject, subTopic, drillSize)
}
