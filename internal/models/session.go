package models

import "time"

type CompletionReason string

const (
	CompletionFailed    CompletionReason = "failed"
	CompletionCompleted CompletionReason = "completed"
	CompletionAbandoned CompletionReason = "abandoned"
)

// UnlimitedQuestions is the sentinel reported instead of a fixed session length.
const UnlimitedQuestions = "Unlimited"

const StartingStrikes = 3

// DifficultyChange records one tier transition for the post-session log.
type DifficultyChange struct {
	From          Difficulty `bson:"from" json:"from"`
	To            Difficulty `bson:"to" json:"to"`
	Reason        string     `bson:"reason" json:"reason"`
	Changed       bool       `bson:"changed" json:"changed"`
	QuestionIndex int        `bson:"question_index" json:"question_index"`
}

type GauntletSession struct {
	ID                    string             `bson:"_id,omitempty" json:"id"`
	UserID                string             `bson:"user_id" json:"user_id"`
	Subject               string             `bson:"subject" json:"subject"`
	SubTopic              string             `bson:"sub_topic,omitempty" json:"sub_topic,omitempty"`
	StrikesLeft           int                `bson:"strikes_left" json:"strikes_left"`
	CurrentDifficulty     Difficulty         `bson:"current_difficulty" json:"current_difficulty"`
	ConsecutiveCorrect    int                `bson:"consecutive_correct" json:"consecutive_correct"`
	ConsecutiveIncorrect  int                `bson:"consecutive_incorrect" json:"consecutive_incorrect"`
	CorrectStreak         int                `bson:"correct_streak" json:"correct_streak"`
	MaxCorrectStreak      int                `bson:"max_correct_streak" json:"max_correct_streak"`
	CorrectAnswers        int                `bson:"correct_answers" json:"correct_answers"`
	IncorrectAnswers      int                `bson:"incorrect_answers" json:"incorrect_answers"`
	CurrentQuestionIndex  int                `bson:"current_question_index" json:"current_question_index"`
	Score                 int                `bson:"score" json:"score"`
	TotalXPGained         int                `bson:"total_xp_gained" json:"total_xp_gained"`
	QuestionHistory       []string           `bson:"question_history" json:"question_history"`
	DifficultyProgression []DifficultyChange `bson:"difficulty_progression" json:"difficulty_progression"`
	IsActive              bool               `bson:"is_active" json:"is_active"`
	CompletionReason      CompletionReason   `bson:"completion_reason,omitempty" json:"completion_reason,omitempty"`
	SessionStartTime      time.Time          `bson:"session_start_time" json:"session_start_time"`
	SessionEndTime        time.Time          `bson:"session_end_time,omitempty" json:"session_end_time,omitempty"`
	QuestionIssuedAt      time.Time          `bson:"question_issued_at,omitempty" json:"question_issued_at,omitempty"`
}

// NewGauntletSession returns an active session with full strikes. The caller
// assigns the ID and pushes the first question into the history.
func NewGauntletSession(userID, subject string, difficulty Difficulty, start time.Time) *GauntletSession {
	if !difficulty.Valid() {
		difficulty = DifficultyEasy
	}
	return &GauntletSession{
		UserID:            userID,
		Subject:           subject,
		StrikesLeft:       StartingStrikes,
		CurrentDifficulty: difficulty,
		IsActive:          true,
		QuestionHistory:   []string{},
		SessionStartTime:  start,
	}
}

// CurrentQuestionID is the most recently issued question, or "" before the
// first question is served.
func (s *GauntletSession) CurrentQuestionID() string {
	if len(s.QuestionHistory) == 0 {
		return ""
	}
	return s.QuestionHistory[len(s.QuestionHistory)-1]
}

// End makes the session terminal. It is a no-op on an already-ended session
// so the completion reason is only ever set once.
func (s *GauntletSession) End(reason CompletionReason, at time.Time) {
	if !s.IsActive {
		return
	}
	s.IsActive = false
	s.CompletionReason = reason
	s.SessionEndTime = at
}

// QuestionsCompleted counts questions that received a terminal event.
func (s *GauntletSession) QuestionsCompleted() int {
	if s.CurrentQuestionIndex < 1 {
		return 0
	}
	return s.CurrentQuestionIndex - 1
}

// Duration is the wall-clock session length in whole seconds.
func (s *GauntletSession) Duration() int {
	if s.SessionEndTime.IsZero() {
		return 0
	}
	return int(s.SessionEndTime.Sub(s.SessionStartTime).Round(time.Second) / time.Second)
}

// HighestDifficulty scans the progression log for the highest tier touched,
// falling back to the current difficulty when no change ever occurred.
func (s *GauntletSession) HighestDifficulty() Difficulty {
	highest := s.CurrentDifficulty
	if !highest.Valid() {
		highest = DifficultyEasy
	}
	for _, change := range s.DifficultyProgression {
		if change.From.Tier() > highest.Tier() {
			highest = change.From
		}
		if change.To.Tier() > highest.Tier() {
			highest = change.To
		}
	}
	return highest
}

// SessionSummary is the terminal report produced on every session end.
type SessionSummary struct {
	QuestionsCompleted int              `json:"questions_completed"`
	TotalQuestions     string           `json:"total_questions"`
	CorrectAnswers     int              `json:"correct_answers"`
	IncorrectAnswers   int              `json:"incorrect_answers"`
	FinalScore         int              `json:"final_score"`
	TotalXPGained      int              `json:"total_xp_gained"`
	MaxCorrectStreak   int              `json:"max_correct_streak"`
	SessionDuration    int              `json:"session_duration"`
	CompletionReason   CompletionReason `json:"completion_reason"`
	HighestDifficulty  Difficulty       `json:"highest_difficulty"`
}

func (s *GauntletSession) Summary() SessionSummary {
	return SessionSummary{
		QuestionsCompleted: s.QuestionsCompleted(),
		TotalQuestions:     UnlimitedQuestions,
		CorrectAnswers:     s.CorrectAnswers,
		IncorrectAnswers:   s.IncorrectAnswers,
		FinalScore:         s.Score,
		TotalXPGained:      s.TotalXPGained,
		MaxCorrectStreak:   s.MaxCorrectStreak,
		SessionDuration:    s.Duration(),
		CompletionReason:   s.CompletionReason,
		HighestDifficulty:  s.HighestDifficulty(),
	}
}
