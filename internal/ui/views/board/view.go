package board

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	kanbandto "tvp/internal/modules/kanban/dto"
	"tvp/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type BoardPort interface {
	Bridge(ctx context.Context) (kanbandto.BridgeOutput, error)
	Goals(ctx context.Context) (kanbandto.GoalBoardOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type BoardsLoadedMsg struct {
	Bridge kanbandto.BridgeOutput
	Goals  kanbandto.GoalBoardOutput
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    BoardPort
	bridge  viewport.Model
	goals   viewport.Model
	spinner spinner.Model
	loading bool
	loadErr error
	width   int
	height  int
}

func New(port BoardPort) Model {
	paneStyle := lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	bridgeVP := viewport.New(0, 0)
	bridgeVP.Style = paneStyle
	goalsVP := viewport.New(0, 0)
	goalsVP.Style = paneStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		bridge:  bridgeVP,
		goals:   goalsVP,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadBoardsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case BoardsLoadedMsg:
		m.loading = false
		m.loadErr = msg.Err
		if msg.Err == nil {
			m.bridge.SetContent(renderBridge(msg.Bridge))
			m.goals.SetContent(renderGoals(msg.Goals))
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var bCmd tea.Cmd
		m.bridge, bCmd = m.bridge.Update(msg)
		cmds = append(cmds, bCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading boards…")
	}
	if m.loadErr != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("boards: "+m.loadErr.Error()))
	}

	halfW := m.width / 2

	bridgePane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(halfW - 2).
		Height(m.height - 2).
		Render(m.bridge.View())

	goalsPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - halfW - 2).
		Height(m.height - 2).
		Render(m.goals.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, bridgePane, goalsPane)
}

// Reload refreshes both boards from the engine.
func (m Model) Reload() tea.Cmd {
	return m.loadBoardsCmd()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	halfW := m.width / 2
	m.bridge.Width = halfW - 4
	m.bridge.Height = m.height - 4
	m.goals.Width = m.width - halfW - 4
	m.goals.Height = m.height - 4
}

func renderBridge(bridge kanbandto.BridgeOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Bridge") + "\n\n")
	writeColumn(&sb, "Now", bridge.Now)
	writeColumn(&sb, "Paused", bridge.Paused)
	writeColumn(&sb, "Captured from Reality", bridge.Captured)
	writeColumn(&sb, "Next 3", bridge.Next)
	return sb.String()
}

func renderGoals(goals kanbandto.GoalBoardOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Goals") + "\n\n")
	for _, section := range goals.Order {
		writeColumn(&sb, section, goals.Sections[section])
	}
	return sb.String()
}

func writeColumn(sb *strings.Builder, header string, items []string) {
	sb.WriteString(theme.Hot.Render(header) + "\n")
	if len(items) == 0 {
		sb.WriteString(theme.Muted.Render("  (empty)") + "\n\n")
		return
	}
	for _, item := range items {
		sb.WriteString("  " + item + "\n")
	}
	sb.WriteString("\n")
}

func (m Model) loadBoardsCmd() tea.Cmd {
	return func() tea.Msg {
		bridge, err := m.port.Bridge(context.Background())
		if err != nil {
			return BoardsLoadedMsg{Err: err}
		}
		goals, err := m.port.Goals(context.Background())
		return BoardsLoadedMsg{Bridge: bridge, Goals: goals, Err: err}
	}
}
