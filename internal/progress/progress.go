package progress

import (
	"strings"

	"gauntlet-service/internal/models"
)

// MinAttemptsForWeakness is the evidence floor before an accuracy bucket can
// be called a weakness. One unlucky attempt is not a weakness.
const MinAttemptsForWeakness = 3

// RecordAttempt upserts the question's accuracy bucket on the user,
// incrementing the attempt count always and the correct count on success.
func RecordAttempt(user *models.User, question *models.Question, wasCorrect bool) {
	if user.Progress == nil {
		user.Progress = make(map[string]*models.ProgressEntry)
	}
	key := question.ProgressKey()
	entry, ok := user.Progress[key]
	if !ok {
		entry = &models.ProgressEntry{}
		user.Progress[key] = entry
	}
	entry.TotalAttempted++
	if wasCorrect {
		entry.Correct++
	}
}

// WeakestLink returns the progress key with the lowest accuracy among buckets
// with enough attempts, or "" when nothing qualifies. Ties go to the
// least-practiced bucket, then to the lexicographically smallest key so the
// result is deterministic.
func WeakestLink(progress map[string]*models.ProgressEntry) string {
	weakest := ""
	var weakestRatio float64
	var weakestAttempts int

	for key, entry := range progress {
		if entry == nil || entry.TotalAttempted < MinAttemptsForWeakness {
			continue
		}
		ratio := float64(entry.Correct) / float64(entry.TotalAttempted)
		switch {
		case weakest == "" || ratio < weakestRatio:
		case ratio == weakestRatio && entry.TotalAttempted < weakestAttempts:
		case ratio == weakestRatio && entry.TotalAttempted == weakestAttempts && key < weakest:
		default:
			continue
		}
		weakest = key
		weakestRatio = ratio
		weakestAttempts = entry.TotalAttempted
	}
	return weakest
}

// SplitKey recovers subject and optional sub-topic from a progress key.
// Keys are "subject" or "subject-subTopic"; the first dash separates the two.
func SplitKey(key string) (subject, subTopic string) {
	if i := strings.Index(key, "-"); i >= 0 {
		return key[:i], key[i+1:]
	}
	return key, ""
}
