// Package stats renders performance statistics from the attempt log.
package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fastmath/internal/config"
	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/screen"
	"github.com/abhisek/fastmath/internal/ui/components"
	"github.com/abhisek/fastmath/internal/ui/theme"
)

// recentWindow is how many trailing attempts feed the recent summary.
const recentWindow = 10

// StatsScreen shows per-operation and recent performance.
type StatsScreen struct {
	log *history.Log
	cfg *config.Config
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a stats screen over the given log.
func New(log *history.Log, cfg *config.Config) *StatsScreen {
	return &StatsScreen{log: log, cfg: cfg}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.log.Len() == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNo attempts yet. Start a drill first!")
	}

	var b strings.Builder
	barWidth := width - 30
	if barWidth > 40 {
		barWidth = 40
	}
	if barWidth < 10 {
		barWidth = 10
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  By operation"))
	b.WriteString("\n\n")

	for _, report := range s.log.Reports() {
		label := fmt.Sprintf("  %-14s", report.Op.Name())
		bar := components.NewProgressBar(label, report.Accuracy, true, barWidth+len(label))
		b.WriteString(bar.View())
		detail := fmt.Sprintf("   level %d   %d attempts   avg %.1fs   median %.1fs   mode %.1fs   stddev %.1fs",
			s.cfg.Difficulty(report.Op), report.Attempts,
			report.AvgTime, report.MedianTime, report.ModeTime, report.StdDevTime)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
		b.WriteString("\n")
	}

	recent := s.log.Recent(recentWindow)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(
		fmt.Sprintf("  Last %d attempts", recent.Attempts)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"  accuracy %.0f%%   avg time %.1fs",
		recent.Accuracy*100, recent.AvgTime)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(
		fmt.Sprintf("  longest streak: %d", s.log.LongestStreak())))
	b.WriteString("\n")

	return b.String()
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}
