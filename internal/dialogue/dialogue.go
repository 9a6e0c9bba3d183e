// Package dialogue maps gauntlet outcomes to the devil's flavor lines.
// Purely presentational; the session state machine picks the trigger.
package dialogue

import (
	"fmt"
	"math/rand"

	"gauntlet-service/internal/models"
)

// Line is one piece of devil flavor, text plus an optional audio reference.
type Line struct {
	Text     string `json:"text"`
	AudioURL string `json:"audio_url,omitempty"`
}

var correctLines = map[models.Difficulty][]Line{
	models.DifficultyEasy: {
		{Text: "Correct. Even a broken clock is right twice a day."},
		{Text: "Fine, you got the easy one. Don't celebrate yet."},
		{Text: "A warm-up question. I haven't even started sweating."},
	},
	models.DifficultyMedium: {
		{Text: "Correct... I'll admit that one had teeth."},
		{Text: "Not bad, mortal. The next one bites harder."},
		{Text: "You survived a medium trial. Curious."},
	},
	models.DifficultyHard: {
		{Text: "A hard one falls to you. I am... mildly impressed."},
		{Text: "Correct. Perhaps you do belong in my gauntlet."},
		{Text: "Even my best traps could not stop you. This time."},
	},
}

var incorrectLines = map[models.Difficulty][]Line{
	models.DifficultyEasy: {
		{Text: "Wrong! That was the easy one. Delicious."},
		{Text: "An easy question, and still you stumble. Pathetic."},
		{Text: "Incorrect. My imps are laughing at you."},
	},
	models.DifficultyMedium: {
		{Text: "Wrong. The middle tier claims another victim."},
		{Text: "Incorrect! Did the difficulty scare you?"},
		{Text: "A medium question bested you. How fitting."},
	},
	models.DifficultyHard: {
		{Text: "Wrong, but I expected nothing more at this depth."},
		{Text: "The hard ones separate coders from pretenders."},
		{Text: "Incorrect. The abyss of hard questions swallows you."},
	},
}

var timeoutLines = map[models.Difficulty]map[models.QuestionType]Line{
	models.DifficultyEasy: {
		models.QuestionMCQ:     {Text: "Too slow! Even a sloth could pick faster than that!", AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/Too+slow+Even+a+sloth+could+pick+faster+than+that.mp3"},
		models.QuestionInteger: {Text: "Time's up! Your calculations need more speed, mortal!", AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/Time's+up+Your+calculations+need+more+speed%2C+mortal.mp3"},
		models.QuestionCode:    {Text: "Timeout! Your coding fingers are as slow as your brain!", AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/Timeout+Your+coding+fingers+are+as+slow+as+your+brain.mp3"},
	},
	models.DifficultyMedium: {
		models.QuestionMCQ:     {Text: "Time expired! Speed is as important as accuracy in my realm!", AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/Time+expired+Speed+is+as+important+as+accuracy+in+my+realm.mp3"},
		models.QuestionInteger: {Text: "Too sluggish! Mathematical prowess requires swift thinking!", AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/Too+sluggish+Mathematical+prowess+requires+swift+thinking.mp3"},
		models.QuestionCode:    {Text: "Code timeout! Your programming pace disappoints me greatly!", AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/Code+timeout+Your+programming+pace+disappoints+me+greatly.mp3"},
	},
	models.DifficultyHard: {
		models.QuestionMCQ:     {Text: "Pathetically slow! Elite minds don't hesitate this long!", AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/Pathetically+slow+Elite+minds+don't+hesitate+this+long.mp3"},
		models.QuestionInteger: {Text: "Time's up! Advanced problems demand rapid solutions!", AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/Time's+up+Advanced+problems+demand+rapid+solutions.mp3"},
		models.QuestionCode:    {Text: "Coding timeout! Four minutes should be plenty for a competent programmer!", AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/Coding+timeout+Four+minutes+should+be+plenty+for+a+competent+programmer.mp3"},
	},
}

var genericTimeout = Line{
	Text:     "Time's up! Speed up or face my wrath!",
	AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/Time's+up+Speed+up+or+face+my+wrath.mp3",
}

var gameOverLines = []Line{
	{Text: "Three strikes. Your soul is mine... at least until the next attempt."},
	{Text: "Banished! Come back when your skills match your ambition."},
	{Text: "Game over, mortal. The gauntlet always collects its due."},
}

var sessionWinLine = Line{
	Text:     "You've survived... for now. Don't think this is over.",
	AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/You've+survived...+for+now.+Don't+think+this+is+over..mp3",
}

var blessingLine = Line{
	Text:     "A 5-win streak... Impressive. You've been blessed with Feverish Focus, granting 1.5x XP for 5 minutes.",
	AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/A+5-win+streak...+Impressive.+You've+been+blessed+with+Feverish+Focus%2C+granting+1.5x+XP+for+5+minutes..mp3",
}

var curseLine = Line{
	Text:     "You're faltering. You've been cursed with Crippling Doubt! Your XP gains are halved for 5 minutes.",
	AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/You're+faltering.+You've+been+cursed+with+Crippling+Doubt!+Your+XP+gains+are+halved+for+5+minutes..mp3",
}

var levelUpLine = Line{
	Text:     "Congrats, you've reached a new level. Don't get cocky.",
	AudioURL: "https://devils-gauntlet-audio-12345.s3.eu-north-1.amazonaws.com/Congrats+You've+reached+new+Level+.+Don't+get+cocky..mp3",
}

// ForAnswer picks a line for a graded answer at the question's difficulty.
func ForAnswer(correct bool, difficulty models.Difficulty) Line {
	pool := incorrectLines
	if correct {
		pool = correctLines
	}
	lines, ok := pool[difficulty]
	if !ok || len(lines) == 0 {
		lines = pool[models.DifficultyEasy]
	}
	return lines[rand.Intn(len(lines))]
}

// ForTimeout picks the timeout line for a difficulty and question type.
func ForTimeout(difficulty models.Difficulty, questionType models.QuestionType) Line {
	if byType, ok := timeoutLines[difficulty]; ok {
		if line, ok := byType[questionType]; ok {
			return line
		}
	}
	return genericTimeout
}

// ForDifficultyChange narrates a tier transition.
func ForDifficultyChange(from, to models.Difficulty, reason string) Line {
	if to.Tier() > from.Tier() {
		return Line{Text: fmt.Sprintf("So, %s questions bore you? Very well — %s. You earned it: %s.", from, to, reason)}
	}
	return Line{Text: fmt.Sprintf("Struggling, are we? I'll soften the blows — back to %s. The record shows: %s.", to, reason)}
}

func GameOver() Line {
	return gameOverLines[rand.Intn(len(gameOverLines))]
}

func SessionWin() Line { return sessionWinLine }

func Blessing() Line { return blessingLine }

func Curse() Line { return curseLine }

func LevelUp() Line { return levelUpLine }
