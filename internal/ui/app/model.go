package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	analyticsin "tvp/internal/modules/analytics/port/in"
	kanbanin "tvp/internal/modules/kanban/port/in"
	"tvp/internal/ui/theme"
	boardview "tvp/internal/ui/views/board"
	timelineview "tvp/internal/ui/views/timeline"
)

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimeline tabID = iota
	tabBoard
	tabCount
)

var tabLabels = [tabCount]string{"Timeline", "Board"}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab    key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Reload, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Reload},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing and the help
// overlay; all data access goes through the sub-view ports, so the
// dashboard stays read-only.
type Model struct {
	timelineView timelineview.Model
	boardView    boardview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	width     int
	height    int
}

func NewModel(analytics analyticsin.Usecase, kanban kanbanin.Usecase) Model {
	return Model{
		timelineView: timelineview.New(analytics),
		boardView:    boardview.New(kanban),
		activeTab:    tabTimeline,
		keys:         defaultKeys(),
		help:         help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.timelineView.Init(), m.boardView.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the timeline's search filter when it is open.
		if m.activeTab == tabTimeline && m.timelineView.Filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case "r":
			switch m.activeTab {
			case tabTimeline:
				cmds = append(cmds, m.timelineView.Reload())
			case tabBoard:
				cmds = append(cmds, m.boardView.Reload())
			}
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabTimeline:
		m.timelineView, tabCmd = m.timelineView.Update(msg)
	case tabBoard:
		m.boardView, tabCmd = m.boardView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.activeTab == tabTimeline:
		content = m.timelineView.View()
	default:
		content = m.boardView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "tvp  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	right := theme.Muted.Render("?:help  tab:switch  r:reload  q:quit")
	gap := m.width - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timelineView, _ = m.timelineView.Update(sz)
	m.boardView, _ = m.boardView.Update(sz)
}
