package reward

import (
	"math"
	"time"

	"gauntlet-service/internal/models"
)

// Base XP per correct answer, before effect modifiers.
var baseXP = map[models.Difficulty]int{
	models.DifficultyEasy:   10,
	models.DifficultyMedium: 25,
	models.DifficultyHard:   50,
}

const xpPerLevel = 150

// Rank thresholds; the highest level at or below the user's level wins.
var rankThresholds = []struct {
	Level int
	Rank  string
}{
	{1, "Novice"},
	{5, "Code Imp"},
	{10, "Byte Fiend"},
	{20, "Code Devil"},
}

func RankForLevel(level int) string {
	rank := rankThresholds[0].Rank
	for _, threshold := range rankThresholds {
		if level >= threshold.Level {
			rank = threshold.Rank
		}
	}
	return rank
}

// ClearExpiredEffect lazily drops an effect whose expiry has passed. Expired
// effects must read as absent everywhere, so callers run this before any
// effect check.
func ClearExpiredEffect(user *models.User, now time.Time) {
	if user.ActiveEffect != nil && user.ActiveEffect.Expired(now) {
		user.ActiveEffect = nil
	}
}

// XPForAnswer computes the XP earned for a correct answer at the given
// difficulty, applying a live effect modifier and rounding to nearest.
func XPForAnswer(difficulty models.Difficulty, effect *models.ActiveEffect, now time.Time) int {
	xp := float64(baseXP[models.DifficultyEasy])
	if base, ok := baseXP[difficulty]; ok {
		xp = float64(base)
	}
	if effect != nil && !effect.Expired(now) {
		xp *= effect.Modifier
	}
	return int(math.Round(xp))
}

// Award credits XP for a correct answer and applies at most one level-up.
// It returns the XP credited and whether the user leveled.
func Award(user *models.User, difficulty models.Difficulty, now time.Time) (xp int, leveledUp bool) {
	ClearExpiredEffect(user, now)

	xp = XPForAnswer(difficulty, user.ActiveEffect, now)
	user.XP += xp
	user.TotalXP += xp

	if user.XPToNextLevel <= 0 {
		user.XPToNextLevel = maxInt(user.Level, 1) * xpPerLevel
	}
	if user.XP >= user.XPToNextLevel {
		user.Level++
		user.XP -= user.XPToNextLevel
		user.XPToNextLevel = user.Level * xpPerLevel
		user.Rank = RankForLevel(user.Level)
		leveledUp = true
	}
	return xp, leveledUp
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
