package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// palette maps core.Color to ANSI 256-colour codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:   lipgloss.Color("0"),
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorGreen:   lipgloss.Color("2"),
	core.ColorYellow:  lipgloss.Color("3"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorCyan:    lipgloss.Color("6"),
	core.ColorWhite:   lipgloss.Color("7"),
	core.ColorNavy:    lipgloss.Color("17"),
	core.ColorGray:    lipgloss.Color("245"),
}

// cellStyle builds the style for a foreground/background pair.
// ColorDefault (and anything unknown) leaves the terminal colour alone.
func cellStyle(r *lipgloss.Renderer, fg, bg core.Color) lipgloss.Style {
	style := r.NewStyle()
	if c, ok := palette[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
// A nil renderer uses lipgloss's default one (the local terminal).
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	type colors struct{ fg, bg core.Color }
	styles := make(map[colors]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.Cell(x, y)
			pair := colors{first.Fg, first.Bg}

			var run strings.Builder
			for x < s.Width() {
				c := s.Cell(x, y)
				if c.Fg != pair.fg || c.Bg != pair.bg {
					break
				}
				run.WriteRune(c.Rune)
				x++
			}

			style, ok := styles[pair]
			if !ok {
				style = cellStyle(r, pair.fg, pair.bg)
				styles[pair] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
