// Package core provides the drawing surface, input events and small helpers
// shared by the game and the platform layer. It has no external dependencies
// (especially no Bubble Tea) so game logic stays pure and testable.
package core

import (
	"strings"
)

// Canvas is the drawing capability a game receives every frame.
// Coordinates are (column, row) with (0, 0) in the top-left corner.
type Canvas interface {
	// Clear blanks every cell with default colours.
	Clear()

	// ClearBackground blanks every cell and paints it with bg.
	ClearBackground(bg Color)

	// SetCell places a coloured glyph.
	SetCell(col, row int, fg, bg Color, glyph rune)

	// Print writes text starting at (col, row), keeping each cell's background.
	Print(col, row int, text string)

	// PrintCentered writes text horizontally centred on row.
	PrintCentered(row int, text string)

	// RequestQuit tells the host to stop its loop after this frame.
	RequestQuit()
}

// Cell is one character position on the screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a fixed-size cell buffer implementing Canvas.
// It decouples game rendering from the terminal: games draw cells and
// the platform turns the buffer into styled text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
	quit   bool
}

var _ Canvas = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with blank default-coloured cells.
func (s *Screen) Clear() {
	s.ClearBackground(ColorDefault)
}

// ClearBackground fills the entire screen with blank cells painted bg.
func (s *Screen) ClearBackground(bg Color) {
	c := blankCell
	c.Bg = bg
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// SetCell places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(col, row int, fg, bg Color, glyph rune) {
	if !s.inBounds(col, row) {
		return
	}
	s.cells[row][col] = Cell{Rune: glyph, Fg: fg, Bg: bg}
}

// Print writes a string horizontally starting at (col, row).
// Characters beyond the screen edge are clipped.
func (s *Screen) Print(col, row int, text string) {
	i := 0
	for _, r := range text {
		x := col + i
		i++
		if !s.inBounds(x, row) {
			continue
		}
		s.cells[row][x].Rune = r
		s.cells[row][x].Fg = ColorDefault
	}
}

// PrintCentered prints text centred horizontally on the given row.
func (s *Screen) PrintCentered(row int, text string) {
	col := (s.width - len([]rune(text))) / 2
	s.Print(col, row, text)
}

// RequestQuit records that the game asked the host to stop.
func (s *Screen) RequestQuit() {
	s.quit = true
}

// QuitRequested reports whether RequestQuit has been called.
func (s *Screen) QuitRequested() bool {
	return s.quit
}

// Cell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Cell(col, row int) Cell {
	if !s.inBounds(col, row) {
		return blankCell
	}
	return s.cells[row][col]
}

// Get returns the rune at the given position.
func (s *Screen) Get(col, row int) rune {
	return s.Cell(col, row).Rune
}

func (s *Screen) inBounds(col, row int) bool {
	return col >= 0 && col < s.width && row >= 0 && row < s.height
}

// String converts the screen to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
