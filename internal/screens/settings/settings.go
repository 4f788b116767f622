// Package settings implements the configuration screen: operation
// toggles, per-operation difficulty, and the negative-results switch.
package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fastmath/internal/config"
	"github.com/abhisek/fastmath/internal/problem"
	"github.com/abhisek/fastmath/internal/screen"
	"github.com/abhisek/fastmath/internal/session"
	"github.com/abhisek/fastmath/internal/ui/components"
	"github.com/abhisek/fastmath/internal/ui/layout"
	"github.com/abhisek/fastmath/internal/ui/theme"
)

// negativeRow is the cursor index of the allow-negative toggle, after
// the four operation rows.
var negativeRow = len(problem.Operators)

// SettingsScreen edits the drill configuration.
type SettingsScreen struct {
	cfg    *config.Config
	rec    session.Recorder
	cursor int

	// editing is true while the level input is open for the current
	// operation row.
	editing bool
	input   components.TextInput
}

var _ screen.Screen = (*SettingsScreen)(nil)

// New creates a settings screen editing cfg in place.
func New(cfg *config.Config, rec session.Recorder) *SettingsScreen {
	return &SettingsScreen{cfg: cfg, rec: rec}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.editing {
		return s.updateEditing(kmsg)
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < negativeRow {
			s.cursor++
		}
	case " ", "space", "enter":
		if s.cursor == negativeRow {
			s.cfg.AllowNegative = !s.cfg.AllowNegative
			s.persist()
		} else {
			op := problem.Operators[s.cursor]
			s.cfg.Operations[op] = !s.cfg.Operations[op]
			s.persist()
		}
	case "left", "h":
		if s.cursor < negativeRow {
			op := problem.Operators[s.cursor]
			s.cfg.SetDifficulty(op, s.cfg.Difficulty(op)-1)
			s.persist()
		}
	case "right", "l":
		if s.cursor < negativeRow {
			op := problem.Operators[s.cursor]
			s.cfg.SetDifficulty(op, s.cfg.Difficulty(op)+1)
			s.persist()
		}
	case "i":
		if s.cursor < negativeRow {
			s.editing = true
			s.input = components.NewTextInput("level", true, 3)
			return s, s.input.Init()
		}
	}
	return s, nil
}

// updateEditing handles keys while the level input is open.
func (s *SettingsScreen) updateEditing(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "enter":
		if level, err := s.input.NumericValue(); err == nil {
			op := problem.Operators[s.cursor]
			s.cfg.SetDifficulty(op, level)
			s.persist()
		}
		s.editing = false
		return s, nil
	case "i":
		// The same key that opened the input closes it again.
		s.editing = false
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(kmsg)
	return s, cmd
}

// persist saves the config, best-effort. The in-memory config is
// authoritative while the app runs.
func (s *SettingsScreen) persist() {
	if s.rec != nil {
		_ = s.rec.SaveConfig(s.cfg)
	}
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	for i, op := range problem.Operators {
		check := " "
		if s.cfg.Operations[op] {
			check = "x"
		}
		line := fmt.Sprintf("[%s] %-14s  level %d", check, op.Name(), s.cfg.Difficulty(op))
		if s.editing && i == s.cursor {
			line = fmt.Sprintf("[%s] %-14s  level %s", check, op.Name(), s.input.View())
		}
		b.WriteString(s.renderRow(line, i == s.cursor))
	}

	negLabel := "allow negative results"
	check := " "
	if s.cfg.AllowNegative {
		check = "x"
	}
	b.WriteString(s.renderRow(fmt.Sprintf("[%s] %s", check, negLabel), s.cursor == negativeRow))

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("  difficulty also adjusts itself as you play"))
	b.WriteString("\n")

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *SettingsScreen) renderRow(line string, selected bool) string {
	if selected {
		return theme.Selected.Render("  ▸ "+line) + "\n"
	}
	return theme.Unselected.Render("    "+line) + "\n"
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

// KeyHints provides the settings-specific footer hints.
func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "←→", Description: "Level"},
		{Key: "I", Description: "Type level"},
		{Key: "Esc", Description: "Back"},
	}
}
