package timeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	analyticsdto "tvp/internal/modules/analytics/dto"
	"tvp/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TimelinePort interface {
	Sessions(ctx context.Context) ([]analyticsdto.SessionOutput, error)
	Ratios(ctx context.Context, timeframe string) (analyticsdto.RatioOutput, error)
	TimeSpent(ctx context.Context, input analyticsdto.TimeSpentInput) (analyticsdto.TimeSpentOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SessionsLoadedMsg struct {
	Sessions []analyticsdto.SessionOutput
	Err      error
}

type StatsLoadedMsg struct {
	Ratio     analyticsdto.RatioOutput
	TimeSpent analyticsdto.TimeSpentOutput
	Err       error
}

// ─── list item ───────────────────────────────────────────────────────────────

type sessionItem struct {
	session analyticsdto.SessionOutput
}

func (i sessionItem) Title() string {
	if i.session.Active {
		return "● " + i.session.Activity
	}
	return i.session.Activity
}

func (i sessionItem) Description() string {
	if !i.session.HasDuration {
		return i.session.Category
	}
	return fmt.Sprintf("%s  %s", i.session.Category, i.session.Display)
}

func (i sessionItem) FilterValue() string { return i.session.Activity }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      TimelinePort
	list      list.Model
	detail    viewport.Model
	spinner   spinner.Model
	ratio     analyticsdto.RatioOutput
	timeSpent analyticsdto.TimeSpentOutput
	loading   bool
	width     int
	height    int
}

func New(port TimelinePort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Timeline"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		detail:  vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSessionsCmd(), m.loadStatsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case SessionsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Timeline: " + msg.Err.Error()
			return m, nil
		}
		// Newest session first.
		items := make([]list.Item, len(msg.Sessions))
		for i, s := range msg.Sessions {
			items[len(msg.Sessions)-1-i] = sessionItem{session: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.detail.SetContent(m.renderDetail())

	case StatsLoadedMsg:
		if msg.Err == nil {
			m.ratio = msg.Ratio
			m.timeSpent = msg.TimeSpent
			m.detail.SetContent(m.renderDetail())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.detail.SetContent(m.renderDetail())
		}

		var vCmd tea.Cmd
		m.detail, vCmd = m.detail.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading timeline…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reload refreshes sessions and stats from the engine.
func (m Model) Reload() tea.Cmd {
	return tea.Batch(m.loadSessionsCmd(), m.loadStatsCmd())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.detail.Width = detailW - 4
	m.detail.Height = m.height - 4
}

func (m Model) renderDetail() string {
	var sb strings.Builder

	if item, ok := m.list.SelectedItem().(sessionItem); ok {
		s := item.session
		sb.WriteString(theme.Title.Render(s.Activity) + "\n\n")
		sb.WriteString(theme.Muted.Render("category: ") + s.Category + "\n")
		if s.StartStamp != "" {
			sb.WriteString(theme.Muted.Render("start:    ") + s.StartStamp + "\n")
		}
		if s.HasDuration {
			sb.WriteString(theme.Muted.Render("duration: ") + s.Display + "\n")
		}
		if s.Active {
			sb.WriteString(theme.Active.Render("active now") + "\n")
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString(theme.Muted.Render("Select a session to see details") + "\n\n")
	}

	sb.WriteString(theme.Title.Render("This week") + "\n")
	if m.ratio.NoData {
		sb.WriteString(theme.Muted.Render("No data for this timeframe yet.") + "\n")
		return sb.String()
	}
	sb.WriteString(fmt.Sprintf("%s%d sessions, %s\n",
		theme.Muted.Render("total:  "), m.timeSpent.SessionCount, m.timeSpent.TotalDisplay))
	sb.WriteString(fmt.Sprintf("%s%.2f\n", theme.Muted.Render("t/p:    "), m.ratio.TheoryToPractice))
	for _, category := range []string{"THEORY", "PRACTICE", "TASK", "GAME"} {
		sb.WriteString(fmt.Sprintf("%s%-9s %3d (%.1f%%)\n",
			theme.Muted.Render("  "), category, m.ratio.Breakdown[category], m.ratio.Ratios[category]))
	}
	return sb.String()
}

func (m Model) loadSessionsCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.port.Sessions(context.Background())
		return SessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (m Model) loadStatsCmd() tea.Cmd {
	return func() tea.Msg {
		ratio, err := m.port.Ratios(context.Background(), "week")
		if err != nil {
			return StatsLoadedMsg{Err: err}
		}
		timeSpent, err := m.port.TimeSpent(context.Background(), analyticsdto.TimeSpentInput{Timeframe: "week"})
		return StatsLoadedMsg{Ratio: ratio, TimeSpent: timeSpent, Err: err}
	}
}
