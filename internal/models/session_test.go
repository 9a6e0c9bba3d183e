package models

import (
	"testing"
	"time"
)

func TestHighestDifficulty(t *testing.T) {
	testCases := []struct {
		name        string
		current     Difficulty
		progression []DifficultyChange
		expected    Difficulty
	}{
		{"no changes stays current", DifficultyEasy, nil, DifficultyEasy},
		{"current is highest", DifficultyHard, []DifficultyChange{{From: DifficultyEasy, To: DifficultyMedium}}, DifficultyHard},
		{
			"peak before demotion wins",
			DifficultyEasy,
			[]DifficultyChange{
				{From: DifficultyMedium, To: DifficultyHard},
				{From: DifficultyHard, To: DifficultyMedium},
				{From: DifficultyMedium, To: DifficultyEasy},
			},
			DifficultyHard,
		},
		{"invalid current falls back to easy", Difficulty("bogus"), nil, DifficultyEasy},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &GauntletSession{
				CurrentDifficulty:     tc.current,
				DifficultyProgression: tc.progression,
			}
			if got := s.HighestDifficulty(); got != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestEndIsIdempotent(t *testing.T) {
	start := time.Date(2025, 6, 6, 6, 0, 0, 0, time.UTC)
	s := NewGauntletSession("u1", "JavaScript", DifficultyEasy, start)

	s.End(CompletionFailed, start.Add(90*time.Second))
	s.End(CompletionAbandoned, start.Add(5*time.Minute))

	if s.CompletionReason != CompletionFailed {
		t.Errorf("Expected reason failed, got %s", s.CompletionReason)
	}
	if s.Duration() != 90 {
		t.Errorf("Expected duration 90s, got %d", s.Duration())
	}
}

func TestCurrentQuestionID(t *testing.T) {
	s := NewGauntletSession("u1", "JavaScript", DifficultyEasy, time.Now())
	if s.CurrentQuestionID() != "" {
		t.Errorf("Expected empty id before first question, got %q", s.CurrentQuestionID())
	}
	s.QuestionHistory = append(s.QuestionHistory, "q1", "q2")
	if s.CurrentQuestionID() != "q2" {
		t.Errorf("Expected q2, got %q", s.CurrentQuestionID())
	}
}

func TestSummaryReportsUnlimitedTotal(t *testing.T) {
	start := time.Date(2025, 6, 6, 6, 0, 0, 0, time.UTC)
	s := NewGauntletSession("u1", "Python", DifficultyEasy, start)
	s.CurrentQuestionIndex = 8
	s.CorrectAnswers = 5
	s.IncorrectAnswers = 2
	s.Score = 120
	s.TotalXPGained = 120
	s.MaxCorrectStreak = 4
	s.End(CompletionCompleted, start.Add(10*time.Minute))

	summary := s.Summary()
	if summary.TotalQuestions != UnlimitedQuestions {
		t.Errorf("Expected %q, got %q", UnlimitedQuestions, summary.TotalQuestions)
	}
	if summary.QuestionsCompleted != 7 {
		t.Errorf("Expected 7 questions completed, got %d", summary.QuestionsCompleted)
	}
	if summary.FinalScore != 120 || summary.MaxCorrectStreak != 4 {
		t.Errorf("Summary mismatch: %+v", summary)
	}
}

func TestProgressKey(t *testing.T) {
	testCases := []struct {
		subject  string
		subTopic string
		expected string
	}{
		{"JavaScript", "", "JavaScript"},
		{"JavaScript", "loops", "JavaScript-loops"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			q := &Question{Subject: tc.subject, SubTopic: tc.subTopic}
			if got := q.ProgressKey(); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}
