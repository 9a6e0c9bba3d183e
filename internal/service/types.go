package service

import (
	"context"

	"gauntlet-service/internal/dialogue"
	"gauntlet-service/internal/models"
	"gauntlet-service/internal/penance"
)

// Stores the state machine depends on; the mongo repositories satisfy these.
// Every FindByID returns nil without error when the entity is missing.

type SessionStore interface {
	FindByID(ctx context.Context, id string) (*models.GauntletSession, error)
	Create(ctx context.Context, session *models.GauntletSession) error
	Save(ctx context.Context, session *models.GauntletSession) error
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

type QuestionStore interface {
	FindByID(ctx context.Context, id string) (*models.Question, error)
	DistinctSubjects(ctx context.Context) ([]string, error)
	Sample(ctx context.Context, subject, subTopic string, difficulty models.Difficulty, excludeIDs []string) (*models.Question, error)
	FindForDrill(ctx context.Context, subject, subTopic string, limit int) ([]models.Question, error)
}

// QuestionView is a question as served to clients, with its countdown.
type QuestionView struct {
	*models.Question
	TimerDuration int `json:"timer_duration"`
}

// SessionInfo describes a freshly started session.
type SessionInfo struct {
	CurrentQuestion int               `json:"current_question"`
	TotalQuestions  string            `json:"total_questions"`
	Subject         string            `json:"subject"`
	Difficulty      models.Difficulty `json:"difficulty"`
}

type StartResult struct {
	SessionID   string        `json:"session_id"`
	Question    *QuestionView `json:"question"`
	SessionInfo SessionInfo   `json:"session_info"`
}

// SessionProgress is the per-step progress block returned while a session is
// still live.
type SessionProgress struct {
	CurrentQuestion      int               `json:"current_question"`
	TotalQuestions       string            `json:"total_questions"`
	CorrectAnswers       int               `json:"correct_answers"`
	IncorrectAnswers     int               `json:"incorrect_answers"`
	CurrentDifficulty    models.Difficulty `json:"current_difficulty"`
	CorrectStreak        int               `json:"correct_streak"`
	ConsecutiveCorrect   int               `json:"consecutive_correct"`
	ConsecutiveIncorrect int               `json:"consecutive_incorrect"`
}

// UpdatedStats mirrors the user document after an answer was applied.
type UpdatedStats struct {
	StrikesLeft   int                  `json:"strikes_left"`
	Score         int                  `json:"score"`
	XP            int                  `json:"xp"`
	Level         int                  `json:"level"`
	Rank          string               `json:"rank"`
	XPToNextLevel int                  `json:"xp_to_next_level"`
	ActiveEffect  *models.ActiveEffect `json:"active_effect,omitempty"`
}

// SubmitResult is the answer/timeout response: either a next question with
// progress, or a terminal summary, never neither.
type SubmitResult struct {
	Result                   string                 `json:"result"`
	Feedback                 dialogue.Line          `json:"feedback"`
	ExecutionFeedback        string                 `json:"execution_feedback,omitempty"`
	DifficultyChangeDialogue *dialogue.Line         `json:"difficulty_change_dialogue,omitempty"`
	IsGameOver               bool                   `json:"is_game_over"`
	Punishment               *penance.Punishment    `json:"punishment,omitempty"`
	SessionSummary           *models.SessionSummary `json:"session_summary,omitempty"`
	NextQuestion             *QuestionView          `json:"next_question,omitempty"`
	SessionProgress          *SessionProgress       `json:"session_progress,omitempty"`
	UpdatedStats             *UpdatedStats          `json:"updated_stats,omitempty"`
}

type QuitResult struct {
	Message        string                `json:"message"`
	Punishment     *penance.Punishment   `json:"punishment,omitempty"`
	SessionSummary models.SessionSummary `json:"session_summary"`
}

type DrillResult struct {
	Message          string        `json:"message"`
	SessionID        string        `json:"session_id"`
	Question         *QuestionView `json:"question"`
	DrillQuestionIDs []string      `json:"drill_question_ids"`
}
