package progress

import (
	"testing"

	"gauntlet-service/internal/models"
)

func TestRecordAttempt(t *testing.T) {
	user := &models.User{}
	loops := &models.Question{Subject: "JS", SubTopic: "loops"}
	plain := &models.Question{Subject: "Python"}

	RecordAttempt(user, loops, true)
	RecordAttempt(user, loops, false)
	RecordAttempt(user, plain, false)

	entry := user.Progress["JS-loops"]
	if entry == nil {
		t.Fatal("expected a JS-loops bucket")
	}
	if entry.Correct != 1 || entry.TotalAttempted != 2 {
		t.Errorf("JS-loops = %d/%d, want 1/2", entry.Correct, entry.TotalAttempted)
	}

	entry = user.Progress["Python"]
	if entry == nil {
		t.Fatal("questions without a sub-topic bucket under the subject alone")
	}
	if entry.Correct != 0 || entry.TotalAttempted != 1 {
		t.Errorf("Python = %d/%d, want 0/1", entry.Correct, entry.TotalAttempted)
	}
}

func TestWeakestLink(t *testing.T) {
	testCases := []struct {
		name     string
		progress map[string]*models.ProgressEntry
		want     string
	}{
		{
			"lowest accuracy wins",
			map[string]*models.ProgressEntry{
				"JS-loops":  {Correct: 1, TotalAttempted: 10},
				"JS-arrays": {Correct: 9, TotalAttempted: 10},
			},
			"JS-loops",
		},
		{
			"entries below the evidence floor are skipped",
			map[string]*models.ProgressEntry{
				"JS-loops":  {Correct: 0, TotalAttempted: 2},
				"JS-arrays": {Correct: 5, TotalAttempted: 10},
			},
			"JS-arrays",
		},
		{
			"ties break toward the least practiced",
			map[string]*models.ProgressEntry{
				"JS-loops":  {Correct: 2, TotalAttempted: 4},
				"JS-arrays": {Correct: 4, TotalAttempted: 8},
			},
			"JS-loops",
		},
		{
			"no qualifying entries",
			map[string]*models.ProgressEntry{
				"JS-loops": {Correct: 0, TotalAttempted: 1},
			},
			"",
		},
		{
			"empty map",
			map[string]*models.ProgressEntry{},
			"",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeakestLink(tc.progress); got != tc.want {
				t.Errorf("WeakestLink = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSplitKey(t *testing.T) {
	subject, subTopic := SplitKey("JS-loops")
	if subject != "JS" || subTopic != "loops" {
		t.Errorf("SplitKey(JS-loops) = %q, %q", subject, subTopic)
	}

	subject, subTopic = SplitKey("Data Structures-linked-lists")
	if subject != "Data Structures" || subTopic != "linked-lists" {
		t.Errorf("SplitKey = %q, %q", subject, subTopic)
	}

	subject, subTopic = SplitKey("Python")
	if subject != "Python" || subTopic != "" {
		t.Errorf("SplitKey(Python) = %q, %q", subject, subTopic)
	}
}
