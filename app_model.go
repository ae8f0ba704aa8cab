package main

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sup3rbob.dev/folio/pages"
)

var (
	quitKey = key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	)
	helpKey = key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	)
)

// AppModel is the root Bubble Tea model. It owns the window size, the help row
// and the lifecycle of the mounted page.
type AppModel struct {
	page   pages.Page
	help   help.Model
	logger *log.Logger
	width  int
	height int
}

// NewAppModel creates the application model with the portfolio page.
func NewAppModel(logger *log.Logger) AppModel {
	return AppModel{
		page:   pages.NewPortfolioPage(logger),
		help:   help.New(),
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(m.page.Title().Text)}
	if pi, ok := m.page.(pages.PageInitializer); ok {
		cmds = append(cmds, pi.InitCmd())
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizePage()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			// Stop the page's animation loop before the program exits.
			if pu, ok := m.page.(pages.PageUnmounter); ok {
				pu.Unmount()
			}
			return m, tea.Quit
		}
		if key.Matches(msg, helpKey) {
			m.help.ShowAll = !m.help.ShowAll
			m.resizePage()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	var b strings.Builder

	b.WriteString(m.page.View())
	b.WriteString("\n")
	b.WriteString(m.helpView())

	s := docStyle
	if m.width > 0 {
		s = s.Width(m.width)
	}
	if m.height > 0 {
		s = s.Height(m.height)
	}
	return s.Render(b.String())
}

func (m AppModel) helpView() string {
	if m.help.ShowAll {
		return m.help.FullHelpView([][]key.Binding{m.page.KeyMap(), {helpKey, quitKey}})
	}
	return m.help.ShortHelpView(append(m.page.KeyMap(), helpKey, quitKey))
}

// resizePage gives the page whatever the help rows leave over. The page
// already reserves one row for the short help.
func (m AppModel) resizePage() {
	if m.width == 0 {
		return
	}
	extra := lipgloss.Height(m.helpView()) - 1
	m.page.SetSize(m.width, m.height-extra)
}
