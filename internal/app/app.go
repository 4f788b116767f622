package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fastmath/internal/config"
	"github.com/abhisek/fastmath/internal/history"
	"github.com/abhisek/fastmath/internal/router"
	"github.com/abhisek/fastmath/internal/screen"
	"github.com/abhisek/fastmath/internal/screens/home"
	"github.com/abhisek/fastmath/internal/session"
	"github.com/abhisek/fastmath/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *history.Log
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(log *history.Log, cfg *config.Config, rec session.Recorder) AppModel {
	homeScreen := home.New(log, cfg, rec)
	return AppModel{
		router: router.New(homeScreen),
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	attempts := m.log.Len()
	accuracy := 0.0
	if attempts > 0 {
		correct := 0
		for _, r := range m.log.All() {
			if r.Correct {
				correct++
			}
		}
		accuracy = float64(correct) / float64(attempts)
	}
	header := layout.RenderHeader(title, attempts, accuracy, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(log *history.Log, cfg *config.Config, rec session.Recorder) error {
	p := tea.NewProgram(newAppModel(log, cfg, rec))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
