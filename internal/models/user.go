package models

import "time"

type EffectType string

const (
	EffectBlessing EffectType = "blessing"
	EffectCurse    EffectType = "curse"
)

// ActiveEffect is a temporary XP modifier granted by streaks or strikes.
type ActiveEffect struct {
	Type      EffectType `bson:"type" json:"type"`
	Name      string     `bson:"name" json:"name"`
	Modifier  float64    `bson:"modifier" json:"modifier"`
	ExpiresAt time.Time  `bson:"expires_at" json:"expires_at"`
}

func (e *ActiveEffect) Expired(now time.Time) bool {
	return e == nil || !e.ExpiresAt.After(now)
}

// ProgressEntry is rolling accuracy for one subject or subject-subtopic bucket.
type ProgressEntry struct {
	Correct        int `bson:"correct" json:"correct"`
	TotalAttempted int `bson:"total_attempted" json:"total_attempted"`
}

type User struct {
	ID               string                    `bson:"_id,omitempty" json:"id"`
	Username         string                    `bson:"username,omitempty" json:"username,omitempty"`
	XP               int                       `bson:"xp" json:"xp"`
	Level            int                       `bson:"level" json:"level"`
	XPToNextLevel    int                       `bson:"xp_to_next_level" json:"xp_to_next_level"`
	Rank             string                    `bson:"rank" json:"rank"`
	TotalXP          int                       `bson:"total_xp" json:"total_xp"`
	CorrectAnswers   int                       `bson:"correct_answers" json:"correct_answers"`
	ActiveEffect     *ActiveEffect             `bson:"active_effect,omitempty" json:"active_effect,omitempty"`
	Progress         map[string]*ProgressEntry `bson:"progress,omitempty" json:"progress,omitempty"`
	MaxSessionStreak int                       `bson:"max_session_streak" json:"max_session_streak"`
}

// NewUser returns a fresh profile at the starting rank.
func NewUser(id string) *User {
	return &User{
		ID:            id,
		Level:         1,
		XPToNextLevel: 150,
		Rank:          "Novice",
		Progress:      make(map[string]*ProgressEntry),
	}
}

// RecordSessionStreak keeps the best-ever questions-completed count.
func (u *User) RecordSessionStreak(questionsCompleted int) {
	if questionsCompleted > u.MaxSessionStreak {
		u.MaxSessionStreak = questionsCompleted
	}
}
