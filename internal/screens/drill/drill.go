// Package drill implements the drill screen: problems are answered one
// keystroke at a time, and the first wrong keystroke fails the round.
package drill

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fastmath/internal/config"
	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/router"
	"github.com/abhisek/fastmath/internal/screen"
	"github.com/abhisek/fastmath/internal/session"
	"github.com/abhisek/fastmath/internal/ui/layout"
)

// cooldownDuration is how long input is ignored after a mistake, so a
// typing burst does not bleed into the next problem.
const cooldownDuration = 1500 * time.Millisecond

type phase int

const (
	phaseAsking phase = iota
	phaseCooldown
)

// DrillScreen runs one drill session.
type DrillScreen struct {
	sess  *session.Session
	phase phase

	// answer is the expected answer text for the current problem.
	answer string

	// typed is the correctly entered prefix of answer.
	typed string

	// wrongKey is the keystroke that failed the round, for display.
	wrongKey string

	// notice describes the last difficulty change, if any.
	notice string
}

var _ screen.Screen = (*DrillScreen)(nil)

// New creates a drill screen and serves its first problem.
func New(log *history.Log, cfg *config.Config, rec session.Recorder) *DrillScreen {
	d := &DrillScreen{sess: session.New(log, cfg, rec)}
	d.nextProblem()
	return d
}

func (d *DrillScreen) Init() tea.Cmd {
	return nil
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cooldownDoneMsg:
		if d.phase == phaseCooldown {
			d.nextProblem()
		}
		return d, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "q" {
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if d.phase == phaseCooldown {
			// All input during cooldown is discarded.
			return d, nil
		}
		if len([]rune(key)) != 1 {
			return d, nil
		}
		return d, d.handleKeystroke(key)
	}
	return d, nil
}

// handleKeystroke grades one typed character against the expected
// answer. A match advances the round; a mismatch fails it.
func (d *DrillScreen) handleKeystroke(key string) tea.Cmd {
	expected := string(d.answer[len(d.typed)])
	if key != expected {
		d.wrongKey = key
		d.phase = phaseCooldown
		d.recordRound(session.RoundWrong)
		return tea.Tick(cooldownDuration, func(t time.Time) tea.Msg {
			return cooldownDoneMsg(t)
		})
	}

	d.typed += key
	if len(d.typed) == len(d.answer) {
		d.recordRound(session.RoundCorrect)
		d.nextProblem()
	}
	return nil
}

func (d *DrillScreen) recordRound(outcome session.RoundOutcome) {
	elapsed := time.Since(d.sess.RoundStart).Seconds()
	// Persistence is best-effort during play; the in-memory log is
	// already updated when Record returns an error.
	change, _ := d.sess.Record(d.sess.Current, outcome, elapsed)
	d.notice = ""
	if change != nil {
		if change.To > change.From {
			d.notice = "difficulty up"
		} else {
			d.notice = "difficulty down"
		}
	}
}

func (d *DrillScreen) nextProblem() {
	p := d.sess.Next()
	d.answer = p.AnswerText()
	d.typed = ""
	d.wrongKey = ""
	d.phase = phaseAsking
}

func (d *DrillScreen) Title() string {
	return "Drill"
}

// KeyHints provides the drill-specific footer hints.
func (d *DrillScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "0-9", Description: "Answer"},
		{Key: "Q", Description: "End drill"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
