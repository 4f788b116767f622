// Package session runs a drill session: it asks the selection engine
// for problems, records every attempt, and adjusts per-operation
// difficulty from recent performance.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/fastmath/internal/config"
	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/problem"
	"github.com/abhisek/fastmath/internal/scoring"
	"github.com/abhisek/fastmath/internal/selection"
)

// Recorder persists attempts and configuration changes. A nil Recorder
// keeps the session fully in-memory.
type Recorder interface {
	AppendAttempt(history.AttemptRecord) error
	SaveConfig(*config.Config) error
}

// RoundOutcome describes how a single round ended.
type RoundOutcome int

const (
	// RoundCorrect means the learner typed the full answer correctly.
	RoundCorrect RoundOutcome = iota

	// RoundWrong means a keystroke mismatched the expected answer.
	RoundWrong
)

// DifficultyChange reports a per-operation difficulty adjustment made
// after an attempt, for feedback display.
type DifficultyChange struct {
	Operation problem.Operator
	From      int
	To        int
}

// Session is the state of one drill run.
type Session struct {
	// ID is the UUID for this session.
	ID string

	// Log is the full attempt history, shared with the selection engine.
	Log *history.Log

	// Config holds enabled operations and per-operation difficulty.
	Config *config.Config

	// Engine picks the next operation and problem.
	Engine *selection.Engine

	// Recorder persists attempts and config (nil for in-memory runs).
	Recorder Recorder

	// Current is the problem being drilled (zero between rounds).
	Current problem.Problem

	// RoundStart is when the current problem was first displayed.
	RoundStart time.Time

	// Attempted and Correct count this session's rounds.
	Attempted int
	Correct   int

	// StartTime is when the session began.
	StartTime time.Time

	now func() time.Time
}

// New creates a session over the given history and config.
func New(log *history.Log, cfg *config.Config, rec Recorder) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Log:       log,
		Config:    cfg,
		Engine:    selection.NewEngine(log),
		Recorder:  rec,
		StartTime: time.Now(),
		now:       time.Now,
	}
}

// Next picks the next problem and starts its round timer.
func (s *Session) Next() problem.Problem {
	op := s.Engine.PickOperation(s.Config)
	p := s.Engine.PickProblem(op, s.Config.Difficulty(op), s.Config.AllowNegative)
	s.Current = p
	s.RoundStart = s.now()
	return p
}

// Record logs the outcome of the current round, persists it, and
// adjusts the operation's difficulty from recent performance. It
// returns a non-nil DifficultyChange when the level moved.
func (s *Session) Record(p problem.Problem, outcome RoundOutcome, timeTaken float64) (*DifficultyChange, error) {
	correct := outcome == RoundCorrect
	rec := history.AttemptRecord{
		Num1:               p.A,
		Operation:          p.Op,
		Num2:               p.B,
		Correct:            correct,
		TimeTaken:          timeTaken,
		TypingTimeEstimate: scoring.EstimateTypingTime(p.AnswerText()),
		Difficulty:         s.Config.Difficulty(p.Op),
		Timestamp:          s.now(),
		SessionID:          s.ID,
	}
	s.Log.Append(rec)

	s.Attempted++
	if correct {
		s.Correct++
	}

	if s.Recorder != nil {
		if err := s.Recorder.AppendAttempt(rec); err != nil {
			return nil, err
		}
	}

	change := adjustDifficulty(s.Log, s.Config, p.Op, timeTaken)

	if s.Recorder != nil {
		if err := s.Recorder.SaveConfig(s.Config); err != nil {
			return change, err
		}
	}
	return change, nil
}

// Accuracy returns this session's correct ratio, or 0 before any
// attempt.
func (s *Session) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}
