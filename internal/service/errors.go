package service

import "errors"

// Request-level failures the transport layer maps to HTTP statuses.
// Judge failures and question-pool exhaustion are deliberately absent: those
// are absorbed into normal game outcomes so a session always terminates
// cleanly.
var (
	ErrNotFound      = errors.New("not found")
	ErrNotAuthorized = errors.New("not authorized")
	ErrSessionOver   = errors.New("this session is over")
	ErrStaleQuestion = errors.New("question already resolved")
	ErrNoQuestions   = errors.New("no questions found")
	ErrNoWeakness    = errors.New("no weakness identified yet")
)
