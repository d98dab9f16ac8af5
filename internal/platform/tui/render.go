package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andrewsmnv/polyarena/internal/core"
)

// styleCache holds one lipgloss style per palette color, built from
// core.Color.ANSI. Populated lazily from the Bubble Tea goroutine, so
// no locking is needed.
var styleCache = map[core.Color]lipgloss.Style{}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if code := c.ANSI(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	styleCache[c] = s
	return s
}

// RenderScreen flattens a screen buffer into a styled string, batching
// same-colored cell runs so each run costs one escape sequence.
func RenderScreen(s *core.Screen) string {
	var out strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			out.WriteByte('\n')
		}

		run.Reset()
		runColor := s.GetCell(0, y).Color
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				out.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			out.WriteString(styleFor(runColor).Render(run.String()))
		}
	}
	return out.String()
}
