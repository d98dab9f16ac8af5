package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andrewsmnv/polyarena/internal/storage"
)

// leaderboardLimit caps how many entries are pulled from storage.
const leaderboardLimit = 100

// leaderboardKeys is the bubbles key map for the leaderboard screen.
type leaderboardKeys struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k leaderboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

func (k leaderboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

func defaultLeaderboardKeys() leaderboardKeys {
	return leaderboardKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LeaderboardModel shows the top scores for one game together with the
// aggregate stats line (rounds played, best, average).
type LeaderboardModel struct {
	gameID string
	store  *storage.Store
	stats  *storage.GameStats
	table  table.Model
	help   help.Model
	keys   leaderboardKeys
	width  int
	height int
	empty  bool
	back   bool
	quit   bool
}

// NewLeaderboardModel builds the leaderboard for the given game.
func NewLeaderboardModel(store *storage.Store, gameID string, width, height int) LeaderboardModel {
	m := LeaderboardModel{
		gameID: gameID,
		store:  store,
		keys:   defaultLeaderboardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// reload pulls scores and stats from storage and rebuilds the table.
func (m *LeaderboardModel) reload() {
	var entries []storage.ScoreEntry
	m.stats = nil
	if m.store != nil {
		if top, err := m.store.TopScores(m.gameID, leaderboardLimit); err == nil {
			entries = top
		}
		if stats, err := m.store.GetGameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}
	m.empty = len(entries) == 0

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	tableHeight := m.height - 9
	if tableHeight < 3 {
		tableHeight = 3
	}

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "When", Width: 16},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	m.table.SetStyles(st)
}

func (m LeaderboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "no rounds recorded"
	}
	return fmt.Sprintf("%d rounds, best %d, average %.0f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
}

// Init implements tea.Model.
func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scrolling and dismissal.
func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board.
func (m LeaderboardModel) View() string {
	if m.back || m.quit {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("ARENA LEADERBOARD", m.width)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	if m.empty {
		b.WriteString(centerText("No scores yet. Finish a round to open the board.", m.width))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// GoneBack reports whether the user backed out rather than quitting.
func (m LeaderboardModel) GoneBack() bool {
	return m.back
}

// RunLeaderboard shows the board full screen. It reports whether the
// user backed out (true) or quit outright (false).
func RunLeaderboard(store *storage.Store, gameID string, width, height int) (bool, error) {
	p := tea.NewProgram(NewLeaderboardModel(store, gameID, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(LeaderboardModel)
	return ok && m.GoneBack(), nil
}
