// Package home implements the main menu screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fastmath/internal/config"
	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/router"
	"github.com/abhisek/fastmath/internal/screen"
	"github.com/abhisek/fastmath/internal/screens/drill"
	"github.com/abhisek/fastmath/internal/screens/settings"
	"github.com/abhisek/fastmath/internal/screens/stats"
	"github.com/abhisek/fastmath/internal/session"
	"github.com/abhisek/fastmath/internal/ui/components"
	"github.com/abhisek/fastmath/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
	log  *history.Log
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(log *history.Log, cfg *config.Config, rec session.Recorder) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START DRILL", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drill.New(log, cfg, rec)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(log, cfg)}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(cfg, rec)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		log:  log,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("F A S T M A T H"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("mental arithmetic, one keystroke at a time"))
	b.WriteString("\n\n")

	if streak := h.log.LongestStreak(); streak > 0 {
		line := fmt.Sprintf("longest streak: %d", streak)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(line))
		b.WriteString("\n\n")
	}

	menu := h.menu.View()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(menu))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
