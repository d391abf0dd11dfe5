package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	ObstacleChar = '|'
)

// velocityEpsilon absorbs the rounding left by summing gravity steps,
// so ten steps of 0.2 move the player by 2 cells and not 1.
const velocityEpsilon = 1e-9

// Player is the bird. X is its world column, Y its row (0 = top).
type Player struct {
	X        int
	Y        int
	Velocity float64 // Rows per tick, negative = up
}

// NewPlayer creates a player at rest at the given position.
func NewPlayer(x, y int) Player {
	return Player{X: x, Y: y}
}

// GravityAndMove performs one physics tick: gravity up to the terminal
// velocity, vertical move by the whole part of the velocity, one column of
// forward travel, and a clamp at the top of the screen.
func (p *Player) GravityAndMove(phys config.PhysicsConfig) {
	p.Velocity = math.Min(p.Velocity+phys.Gravity, phys.TerminalVelocity)

	p.Y += int(math.Floor(p.Velocity + velocityEpsilon))
	p.X++

	p.Y = core.Max(p.Y, 0)
}

// Flap replaces the current velocity with the upward impulse.
func (p *Player) Flap(impulse float64) {
	p.Velocity = impulse
}

// Render draws the player. The player is always in the leftmost column;
// the world scrolls past it.
func (p Player) Render(dst core.Canvas) {
	dst.SetCell(0, p.Y, core.ColorYellow, core.ColorBlack, PlayerChar)
}
