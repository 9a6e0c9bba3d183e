package adaptive

import "gauntlet-service/internal/models"

// timerDurations gives each question its answer deadline in seconds,
// keyed by difficulty and question type.
var timerDurations = map[models.Difficulty]map[models.QuestionType]int{
	models.DifficultyEasy: {
		models.QuestionMCQ:     30,
		models.QuestionInteger: 45,
		models.QuestionCode:    120,
	},
	models.DifficultyMedium: {
		models.QuestionMCQ:     45,
		models.QuestionInteger: 60,
		models.QuestionCode:    180,
	},
	models.DifficultyHard: {
		models.QuestionMCQ:     60,
		models.QuestionInteger: 90,
		models.QuestionCode:    240,
	},
}

const defaultTimerSeconds = 60

// TimerDuration returns the countdown, in seconds, a client gets for the
// given question.
func TimerDuration(difficulty models.Difficulty, questionType models.QuestionType) int {
	if byType, ok := timerDurations[difficulty]; ok {
		if seconds, ok := byType[questionType]; ok {
			return seconds
		}
	}
	return defaultTimerSeconds
}
