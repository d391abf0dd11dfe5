package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.ClearBackground(core.ColorNavy)
	s.SetCell(0, 1, core.ColorYellow, core.ColorBlack, '@')
	s.SetCell(4, 1, core.ColorRed, core.ColorBlack, '|')
	s.Print(0, 0, "score")

	if got, want := ansi.Strip(RenderScreen(s, nil)), s.String(); got != want {
		t.Errorf("RenderScreen() =\n%q\nexpected\n%q", got, want)
	}
}

func TestCellStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)

	style := cellStyle(r, core.ColorYellow, core.ColorNavy)
	if style.GetForeground() != lipgloss.Color("3") {
		t.Errorf("foreground = %v, expected 3", style.GetForeground())
	}
	if style.GetBackground() != lipgloss.Color("17") {
		t.Errorf("background = %v, expected 17", style.GetBackground())
	}

	plain := cellStyle(r, core.ColorDefault, core.ColorDefault)
	if plain.GetForeground() != (lipgloss.NoColor{}) || plain.GetBackground() != (lipgloss.NoColor{}) {
		t.Error("default colours should leave the style unset")
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorBlack; c <= core.ColorGray; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette has no entry for %v", c)
		}
	}
	if _, ok := palette[core.ColorDefault]; ok {
		t.Error("ColorDefault should not be in the palette")
	}
}
