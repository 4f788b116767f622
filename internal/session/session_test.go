package session

import (
	"testing"
	"time"

	"github.com/abhisek/fastmath/internal/config"
	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/problem"
)

type fakeRecorder struct {
	attempts    []history.AttemptRecord
	configSaves int
}

func (f *fakeRecorder) AppendAttempt(r history.AttemptRecord) error {
	f.attempts = append(f.attempts, r)
	return nil
}

func (f *fakeRecorder) SaveConfig(*config.Config) error {
	f.configSaves++
	return nil
}

func testSession(rec Recorder) *Session {
	return New(history.NewLog(nil), config.Default(), rec)
}

// seedAttempts adds prior attempts for op, all with the given outcome
// and time, so the adjustment window has predictable statistics.
func seedAttempts(s *Session, op problem.Operator, n int, correct bool, timeTaken float64) {
	for i := 0; i < n; i++ {
		s.Log.Append(history.AttemptRecord{
			Num1:       3,
			Operation:  op,
			Num2:       4,
			Correct:    correct,
			TimeTaken:  timeTaken,
			Difficulty: s.Config.Difficulty(op),
			Timestamp:  time.Now(),
		})
	}
}

func TestRecordAppendsAndPersists(t *testing.T) {
	rec := &fakeRecorder{}
	s := testSession(rec)
	p := problem.New(7, problem.OpAdd, 5)

	if _, err := s.Record(p, RoundCorrect, 2.5); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if s.Log.Len() != 1 {
		t.Errorf("log length = %d, want 1", s.Log.Len())
	}
	if len(rec.attempts) != 1 {
		t.Fatalf("persisted %d attempts, want 1", len(rec.attempts))
	}
	got := rec.attempts[0]
	if got.Num1 != 7 || got.Operation != problem.OpAdd || got.Num2 != 5 {
		t.Errorf("persisted problem = %d %s %d", got.Num1, got.Operation, got.Num2)
	}
	if !got.Correct || got.TimeTaken != 2.5 {
		t.Errorf("persisted outcome = %v/%v", got.Correct, got.TimeTaken)
	}
	if got.TypingTimeEstimate != 0.9 { // "12" is two characters
		t.Errorf("typing estimate = %v, want 0.9", got.TypingTimeEstimate)
	}
	if got.SessionID != s.ID {
		t.Errorf("session id = %q, want %q", got.SessionID, s.ID)
	}
	if rec.configSaves != 1 {
		t.Errorf("config saved %d times, want 1", rec.configSaves)
	}
	if s.Attempted != 1 || s.Correct != 1 {
		t.Errorf("counters = %d/%d, want 1/1", s.Correct, s.Attempted)
	}
}

func TestDifficultyRaisesOnFastAccurateStreak(t *testing.T) {
	s := testSession(nil)
	seedAttempts(s, problem.OpMul, 19, true, 3.0)

	// A correct answer well under the window's mean time.
	change, err := s.Record(problem.New(6, problem.OpMul, 7), RoundCorrect, 1.0)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if change == nil {
		t.Fatal("expected a difficulty change")
	}
	if change.From != 1 || change.To != 2 {
		t.Errorf("change = %d -> %d, want 1 -> 2", change.From, change.To)
	}
	if got := s.Config.Difficulty(problem.OpMul); got != 2 {
		t.Errorf("difficulty = %d, want 2", got)
	}
}

func TestDifficultyLowersOnPoorAccuracy(t *testing.T) {
	s := testSession(nil)
	s.Config.SetDifficulty(problem.OpSub, 3)
	seedAttempts(s, problem.OpSub, 19, false, 3.0)

	change, err := s.Record(problem.New(12, problem.OpSub, 5), RoundWrong, 3.0)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if change == nil || change.To != 2 {
		t.Fatalf("change = %+v, want drop to 2", change)
	}
}

func TestDifficultyLowersOnSlowResponse(t *testing.T) {
	s := testSession(nil)
	s.Config.SetDifficulty(problem.OpAdd, 4)
	seedAttempts(s, problem.OpAdd, 19, true, 2.0)

	// All answers correct, but this one far slower than the window.
	change, err := s.Record(problem.New(8, problem.OpAdd, 9), RoundCorrect, 4.0)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if change == nil || change.To != 3 {
		t.Fatalf("change = %+v, want drop to 3", change)
	}
}

func TestDifficultyNeverDropsBelowFloor(t *testing.T) {
	s := testSession(nil)
	var change *DifficultyChange
	for i := 0; i < 20; i++ {
		var err error
		change, err = s.Record(problem.New(9, problem.OpDiv, 3), RoundWrong, 3.0)
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if change != nil {
		t.Errorf("change = %+v at the floor, want nil", change)
	}
	if got := s.Config.Difficulty(problem.OpDiv); got != config.MinDifficulty {
		t.Errorf("difficulty = %d, want %d", got, config.MinDifficulty)
	}
}

func TestDifficultyUnchangedWithoutSignal(t *testing.T) {
	s := testSession(nil)

	// A single attempt has no time spread, so the z-score is zero and
	// neither threshold fires.
	change, err := s.Record(problem.New(2, problem.OpAdd, 3), RoundCorrect, 2.0)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if change != nil {
		t.Errorf("change = %+v, want nil", change)
	}
	if got := s.Config.Difficulty(problem.OpAdd); got != 1 {
		t.Errorf("difficulty = %d, want 1", got)
	}
}

func TestAccuracy(t *testing.T) {
	s := testSession(nil)
	if got := s.Accuracy(); got != 0 {
		t.Errorf("empty accuracy = %v, want 0", got)
	}
	s.Record(problem.New(1, problem.OpAdd, 2), RoundCorrect, 1)
	s.Record(problem.New(1, problem.OpAdd, 2), RoundCorrect, 1)
	if got := s.Accuracy(); got != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", got)
	}
}
