package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fastmath/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	var b strings.Builder

	// Session stats line.
	statsLine := fmt.Sprintf("  round %d   correct %d", d.sess.Attempted+1, d.sess.Correct)
	if d.sess.Attempted > 0 {
		statsLine += fmt.Sprintf("   %.0f%%", d.sess.Accuracy()*100)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(statsLine))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n\n")

	prompt := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Solve:  ")
	problemText := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(d.sess.Current.String() + " = ")
	typed := theme.Correct.Render(d.typed)

	line := prompt + problemText + typed
	switch d.phase {
	case phaseAsking:
		line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("_")
	case phaseCooldown:
		line += theme.Incorrect.Render(d.wrongKey)
	}

	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(line))
	b.WriteString("\n\n")

	if d.phase == phaseCooldown {
		reveal := fmt.Sprintf("%s = %s", d.sess.Current, d.answer)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(reveal))
		b.WriteString("\n\n")
	}

	if d.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(d.notice))
		b.WriteString("\n")
	}

	return b.String()
}
