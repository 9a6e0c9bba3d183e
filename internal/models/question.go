package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Tier orders difficulties for highest-reached comparisons.
func (d Difficulty) Tier() int {
	switch d {
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 1
	}
}

type QuestionType string

const (
	QuestionMCQ         QuestionType = "mcq"
	QuestionInteger     QuestionType = "integer"
	QuestionCode        QuestionType = "code"
	QuestionDescription QuestionType = "description"
)

// TestCase is one input/expected-output pair for a code question.
type TestCase struct {
	Input          string `bson:"input" json:"input"`
	ExpectedOutput string `bson:"expected_output" json:"-"`
}

type Question struct {
	ID         string       `bson:"_id,omitempty" json:"id"`
	Subject    string       `bson:"subject" json:"subject"`
	SubTopic   string       `bson:"sub_topic,omitempty" json:"sub_topic,omitempty"`
	Type       QuestionType `bson:"type" json:"type"`
	Difficulty Difficulty   `bson:"difficulty" json:"difficulty"`
	Prompt     string       `bson:"prompt" json:"prompt"`
	Options    []string     `bson:"options,omitempty" json:"options,omitempty"`

	// Answer keys are never serialized to clients.
	CorrectOption string `bson:"correct_option,omitempty" json:"-"`
	CorrectValue  int64  `bson:"correct_value,omitempty" json:"-"`

	TestCases []TestCase `bson:"test_cases,omitempty" json:"test_cases,omitempty"`
	Language  string     `bson:"language,omitempty" json:"language,omitempty"`
}

// ProgressKey is the accuracy-tracking bucket this question counts toward.
func (q *Question) ProgressKey() string {
	if q.SubTopic != "" {
		return q.Subject + "-" + q.SubTopic
	}
	return q.Subject
}
