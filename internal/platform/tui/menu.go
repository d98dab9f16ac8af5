package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrewsmnv/polyarena/internal/core"
	"github.com/andrewsmnv/polyarena/internal/registry"
)

// difficultyRing is the order the start screen cycles presets in.
var difficultyRing = []string{"easy", "normal", "hard", "fixed"}

// MenuResult is what the start screen resolved to.
type MenuResult struct {
	GameID      string
	Difficulty  string
	Config      core.RuntimeConfig
	WantsScores bool
	Quit        bool
}

// MenuModel is the start screen: a game row with a left/right
// difficulty picker, followed by the leaderboard and quit rows.
type MenuModel struct {
	games     []registry.GameInfo
	row       int // games first, then scores, then quit
	diffIdx   int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	done      bool
	result    MenuResult
}

// NewMenuModel creates the start screen.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		games:     registry.List(),
		diffIdx:   1, // normal
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) scoresRow() int { return len(m.games) }
func (m MenuModel) quitRow() int   { return len(m.games) + 1 }

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m.finish(MenuResult{Quit: true})

	case MenuActionUp:
		if m.row > 0 {
			m.row--
		}

	case MenuActionDown:
		if m.row < m.quitRow() {
			m.row++
		}

	case MenuActionLeft:
		if m.row < len(m.games) {
			m.diffIdx = (m.diffIdx + len(difficultyRing) - 1) % len(difficultyRing)
		}

	case MenuActionRight:
		if m.row < len(m.games) {
			m.diffIdx = (m.diffIdx + 1) % len(difficultyRing)
		}

	case MenuActionScoreboard:
		return m.finish(MenuResult{WantsScores: true})

	case MenuActionSelect:
		switch {
		case m.row < len(m.games):
			return m.finish(MenuResult{
				GameID:     m.games[m.row].ID,
				Difficulty: difficultyRing[m.diffIdx],
			})
		case m.row == m.scoresRow():
			return m.finish(MenuResult{WantsScores: true})
		default:
			return m.finish(MenuResult{Quit: true})
		}
	}

	return m, nil
}

func (m MenuModel) finish(res MenuResult) (tea.Model, tea.Cmd) {
	res.Config = m.config
	m.result = res
	m.done = true
	return m, tea.Quit
}

// View renders the start screen.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("P O L Y A R E N A", m.config.ScreenW))
	b.WriteString("\n")
	b.WriteString(centerText("polygons all the way down", m.config.ScreenW))
	b.WriteString("\n\n")

	for i, g := range m.games {
		label := fmt.Sprintf("%s   [%s]", g.Title, difficultyRing[m.diffIdx])
		if i == m.row {
			label = fmt.Sprintf("%s   < %s >", g.Title, difficultyRing[m.diffIdx])
		}
		b.WriteString(m.line(i, label))
	}
	b.WriteString(m.line(m.scoresRow(), "Leaderboard"))
	b.WriteString(m.line(m.quitRow(), "Quit"))

	b.WriteString("\n")
	b.WriteString(centerText("W/S move   A/D difficulty   Enter start   Q quit", m.config.ScreenW))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) line(row int, text string) string {
	marker := "  "
	if row == m.row {
		marker = "> "
	}
	return centerText(marker+text, m.config.ScreenW) + "\n"
}

// Done reports whether the user has resolved the screen.
func (m MenuModel) Done() bool {
	return m.done
}

// Result returns the resolution; only meaningful once Done is true.
func (m MenuModel) Result() MenuResult {
	return m.result
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the start screen standalone and returns its resolution.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Quit: true}, err
	}

	m, ok := final.(MenuModel)
	if !ok || !m.done {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result, nil
}
