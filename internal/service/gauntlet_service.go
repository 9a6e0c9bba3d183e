package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"gauntlet-service/internal/adaptive"
	"gauntlet-service/internal/cache"
	"gauntlet-service/internal/dialogue"
	"gauntlet-service/internal/judge"
	"gauntlet-service/internal/models"
	"gauntlet-service/internal/penance"
	"gauntlet-service/internal/progress"
	"gauntlet-service/internal/reward"
	"gauntlet-service/internal/selection"
	"gauntlet-service/internal/validator"
)

const (
	resultCorrect   = "correct"
	resultIncorrect = "incorrect"
	resultTimeout   = "timeout"

	blessingStreak      = 5
	punishableQuitScore = 3
)

var defaultSubjects = []string{"Data Structures", "JavaScript", "Python"}

// GauntletService owns the session lifecycle: strikes, scoring, streaks,
// buffs, difficulty adaptation, and terminal summaries.
type GauntletService struct {
	Sessions  SessionStore
	Users     UserStore
	Questions QuestionStore

	validator   *validator.Validator
	engine      *adaptive.Engine
	selector    *selection.Selector
	penance     *penance.Generator
	leaderboard cache.LeaderboardCache

	locks *sessionLocks
	now   func() time.Time
}

// NewGauntletService wires the state machine. runner and leaderboard may be
// nil; code questions then grade as execution failures and the ladder is
// simply not maintained.
func NewGauntletService(
	sessions SessionStore,
	users UserStore,
	questions QuestionStore,
	runner judge.Runner,
	penanceGen *penance.Generator,
	leaderboard cache.LeaderboardCache,
) *GauntletService {
	return &GauntletService{
		Sessions:    sessions,
		Users:       users,
		Questions:   questions,
		validator:   validator.New(runner),
		engine:      adaptive.NewEngine(nil),
		selector:    selection.NewSelector(questions),
		penance:     penanceGen,
		leaderboard: leaderboard,
		locks:       newSessionLocks(),
		now:         time.Now,
	}
}

// Subjects lists the practice domains the question bank covers.
func (s *GauntletService) Subjects(ctx context.Context) ([]string, error) {
	subjects, err := s.Questions.DistinctSubjects(ctx)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return defaultSubjects, nil
	}
	return subjects, nil
}

// StartSession opens a gauntlet with full strikes and serves the first
// question at the requested (or easy) difficulty.
func (s *GauntletService) StartSession(ctx context.Context, userID, subject string, difficulty models.Difficulty) (*StartResult, error) {
	now := s.now()
	session := models.NewGauntletSession(userID, subject, difficulty, now)
	session.ID = uuid.NewString()

	question, err := s.selector.NextQuestion(ctx, session)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, fmt.Errorf("%w for subject: %s", ErrNoQuestions, subject)
	}

	s.issueQuestion(session, question, now)
	session.CurrentQuestionIndex = 1

	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &StartResult{
		SessionID: session.ID,
		Question:  s.view(question),
		SessionInfo: SessionInfo{
			CurrentQuestion: 1,
			TotalQuestions:  models.UnlimitedQuestions,
			Subject:         session.Subject,
			Difficulty:      session.CurrentDifficulty,
		},
	}, nil
}

// SubmitAnswer grades one answer and advances the session.
func (s *GauntletService) SubmitAnswer(ctx context.Context, userID, sessionID, questionID, answer string) (*SubmitResult, error) {
	release := s.locks.acquire(sessionID)
	defer release()

	session, question, user, err := s.loadRound(ctx, userID, sessionID, questionID)
	if err != nil {
		return nil, err
	}

	// The judge call for code questions is the one long-latency operation.
	// State is only mutated after its verdict is known.
	graded := s.validator.Validate(ctx, answer, question)

	kind := resultIncorrect
	if graded.IsCorrect {
		kind = resultCorrect
	}
	execution := ""
	if question.Type == models.QuestionCode {
		execution = graded.Feedback
	}
	return s.advance(ctx, session, user, question, kind, graded.IsCorrect, execution)
}

// HandleTimeout treats an expired question deadline as an incorrect answer
// sourced from the clock rather than the player.
func (s *GauntletService) HandleTimeout(ctx context.Context, userID, sessionID, questionID string) (*SubmitResult, error) {
	release := s.locks.acquire(sessionID)
	defer release()

	session, question, user, err := s.loadRound(ctx, userID, sessionID, questionID)
	if err != nil {
		return nil, err
	}
	return s.advance(ctx, session, user, question, resultTimeout, false, "")
}

// QuitSession ends a session voluntarily. Quitting with three or fewer
// correct answers still earns a punishment; honest effort quits free.
func (s *GauntletService) QuitSession(ctx context.Context, userID, sessionID string) (*QuitResult, error) {
	release := s.locks.acquire(sessionID)
	defer release()

	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: session", ErrNotFound)
	}
	if session.UserID != userID {
		return nil, ErrNotAuthorized
	}
	if !session.IsActive {
		return nil, ErrSessionOver
	}
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	session.End(models.CompletionAbandoned, s.now())
	user.RecordSessionStreak(session.CurrentQuestionIndex)

	if err := s.persist(ctx, session, user); err != nil {
		return nil, err
	}

	summary := session.Summary()
	summary.QuestionsCompleted = session.CurrentQuestionIndex

	result := &QuitResult{
		Message:        "Session ended voluntarily",
		SessionSummary: summary,
	}
	if session.CorrectAnswers <= punishableQuitScore {
		p := s.penance.Random()
		result.Punishment = &p
	}
	return result, nil
}

// StartWeaknessDrill opens a session seeded from the user's lowest-accuracy
// subject bucket.
func (s *GauntletService) StartWeaknessDrill(ctx context.Context, userID string) (*DrillResult, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	weakness := progress.WeakestLink(user.Progress)
	if weakness == "" {
		return nil, ErrNoWeakness
	}
	subject, subTopic := progress.SplitKey(weakness)

	questions, err := s.selector.DrillQuestions(ctx, subject, subTopic)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w for weakness: %s", ErrNoQuestions, weakness)
	}

	now := s.now()
	session := models.NewGauntletSession(userID, subject, models.DifficultyEasy, now)
	session.ID = uuid.NewString()
	session.SubTopic = subTopic

	first := &questions[0]
	s.issueQuestion(session, first, now)
	session.CurrentQuestionIndex = 1

	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	return &DrillResult{
		Message:          fmt.Sprintf("Weakness Drill started: %s", weakness),
		SessionID:        session.ID,
		Question:         s.view(first),
		DrillQuestionIDs: ids,
	}, nil
}

// loadRound fetches and authorizes the (session, question, user) triple for a
// submit or timeout, rejecting stale question ids so a question gets exactly
// one terminal event.
func (s *GauntletService) loadRound(ctx context.Context, userID, sessionID, questionID string) (*models.GauntletSession, *models.Question, *models.User, error) {
	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, nil, nil, err
	}
	if session == nil {
		return nil, nil, nil, fmt.Errorf("%w: session", ErrNotFound)
	}
	if session.UserID != userID {
		return nil, nil, nil, ErrNotAuthorized
	}
	if !session.IsActive {
		return nil, nil, nil, ErrSessionOver
	}
	if session.CurrentQuestionID() != questionID {
		return nil, nil, nil, ErrStaleQuestion
	}

	question, err := s.Questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, nil, nil, err
	}
	if question == nil {
		return nil, nil, nil, fmt.Errorf("%w: question", ErrNotFound)
	}

	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	if user == nil {
		return nil, nil, nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return session, question, user, nil
}

// advance applies one graded outcome to the session and user, then either
// issues the next question or terminates with a summary.
func (s *GauntletService) advance(ctx context.Context, session *models.GauntletSession, user *models.User, question *models.Question, kind string, correct bool, execution string) (*SubmitResult, error) {
	now := s.now()
	reward.ClearExpiredEffect(user, now)

	var special *dialogue.Line

	if correct {
		session.CorrectAnswers++
		session.CorrectStreak++
		if session.CorrectStreak > session.MaxCorrectStreak {
			session.MaxCorrectStreak = session.CorrectStreak
		}

		xp, leveledUp := reward.Award(user, question.Difficulty, now)
		session.Score += xp
		session.TotalXPGained += xp
		user.CorrectAnswers++
		progress.RecordAttempt(user, question, true)

		if session.CorrectStreak == blessingStreak && user.ActiveEffect == nil {
			reward.GrantBlessing(user, now)
			line := dialogue.Blessing()
			special = &line
		}
		if leveledUp {
			line := dialogue.LevelUp()
			special = &line
		}
	} else {
		session.IncorrectAnswers++
		session.StrikesLeft--
		session.CorrectStreak = 0
		progress.RecordAttempt(user, question, false)

		if session.StrikesLeft == 1 && user.ActiveEffect == nil {
			reward.GrantCurse(user, now)
			line := dialogue.Curse()
			special = &line
		}
	}

	session.CurrentQuestionIndex++

	// Out of strikes: the only losing end condition.
	if session.StrikesLeft <= 0 {
		session.End(models.CompletionFailed, now)
		user.RecordSessionStreak(session.QuestionsCompleted())
		if err := s.persist(ctx, session, user); err != nil {
			return nil, err
		}
		summary := session.Summary()
		punishment := s.penance.Random()
		return &SubmitResult{
			Result:            kind,
			Feedback:          dialogue.GameOver(),
			ExecutionFeedback: execution,
			IsGameOver:        true,
			Punishment:        &punishment,
			SessionSummary:    &summary,
		}, nil
	}

	transition := s.engine.Next(session.CurrentDifficulty, session.ConsecutiveCorrect, session.ConsecutiveIncorrect, correct)
	session.ConsecutiveCorrect = transition.ConsecutiveCorrect
	session.ConsecutiveIncorrect = transition.ConsecutiveIncorrect
	var changeDialogue *dialogue.Line
	if transition.Changed {
		session.DifficultyProgression = append(session.DifficultyProgression, models.DifficultyChange{
			From:          session.CurrentDifficulty,
			To:            transition.Difficulty,
			Reason:        transition.Reason,
			Changed:       true,
			QuestionIndex: session.CurrentQuestionIndex,
		})
		line := dialogue.ForDifficultyChange(session.CurrentDifficulty, transition.Difficulty, transition.Reason)
		changeDialogue = &line
		session.CurrentDifficulty = transition.Difficulty
	}

	next, err := s.selector.NextQuestion(ctx, session)
	if err != nil {
		return nil, err
	}
	if next == nil {
		// Pool exhausted: graceful completion, never an error.
		session.End(models.CompletionCompleted, now)
		user.RecordSessionStreak(session.QuestionsCompleted())
		if err := s.persist(ctx, session, user); err != nil {
			return nil, err
		}
		summary := session.Summary()
		return &SubmitResult{
			Result:            kind,
			Feedback:          dialogue.SessionWin(),
			ExecutionFeedback: execution,
			IsGameOver:        true,
			SessionSummary:    &summary,
		}, nil
	}

	s.issueQuestion(session, next, now)
	if err := s.persist(ctx, session, user); err != nil {
		return nil, err
	}

	feedback := s.roundFeedback(kind, correct, question, special)

	return &SubmitResult{
		Result:                   kind,
		Feedback:                 feedback,
		ExecutionFeedback:        execution,
		DifficultyChangeDialogue: changeDialogue,
		NextQuestion:             s.view(next),
		SessionProgress: &SessionProgress{
			CurrentQuestion:      session.CurrentQuestionIndex,
			TotalQuestions:       models.UnlimitedQuestions,
			CorrectAnswers:       session.CorrectAnswers,
			IncorrectAnswers:     session.IncorrectAnswers,
			CurrentDifficulty:    session.CurrentDifficulty,
			CorrectStreak:        session.CorrectStreak,
			ConsecutiveCorrect:   session.ConsecutiveCorrect,
			ConsecutiveIncorrect: session.ConsecutiveIncorrect,
		},
		UpdatedStats: &UpdatedStats{
			StrikesLeft:   session.StrikesLeft,
			Score:         session.Score,
			XP:            user.XP,
			Level:         user.Level,
			Rank:          user.Rank,
			XPToNextLevel: user.XPToNextLevel,
			ActiveEffect:  user.ActiveEffect,
		},
	}, nil
}

func (s *GauntletService) roundFeedback(kind string, correct bool, question *models.Question, special *dialogue.Line) dialogue.Line {
	if special != nil {
		return *special
	}
	if kind == resultTimeout {
		return dialogue.ForTimeout(question.Difficulty, question.Type)
	}
	return dialogue.ForAnswer(correct, question.Difficulty)
}

func (s *GauntletService) issueQuestion(session *models.GauntletSession, question *models.Question, at time.Time) {
	session.QuestionHistory = append(session.QuestionHistory, question.ID)
	session.QuestionIssuedAt = at
}

func (s *GauntletService) view(question *models.Question) *QuestionView {
	return &QuestionView{
		Question:      question,
		TimerDuration: adaptive.TimerDuration(question.Difficulty, question.Type),
	}
}

// persist writes session then user, and refreshes the XP ladder. A ladder
// failure is logged, never surfaced.
func (s *GauntletService) persist(ctx context.Context, session *models.GauntletSession, user *models.User) error {
	if err := s.Sessions.Save(ctx, session); err != nil {
		return err
	}
	if err := s.Users.Save(ctx, user); err != nil {
		return err
	}
	if s.leaderboard != nil {
		if err := s.leaderboard.UpdateScore(ctx, user.ID, user.TotalXP); err != nil {
			log.Printf("leaderboard update failed for user %s: %v", user.ID, err)
		}
	}
	return nil
}
