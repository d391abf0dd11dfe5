package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Rand is the random source used to place gaps. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Obstacle is a one-column wall with a gap, fixed in world space.
type Obstacle struct {
	X    int // World column
	GapY int // Row at the centre of the gap
	Size int // Gap height
}

// NewObstacle creates an obstacle at world column x whose gap is sized for score.
func NewObstacle(x, score int, cfg config.ObstacleConfig, rng Rand) Obstacle {
	return Obstacle{
		X:    x,
		GapY: cfg.GapMinY + rng.Intn(cfg.GapMaxY-cfg.GapMinY),
		Size: cfg.GapSize(score),
	}
}

// Render draws both bars at the obstacle's screen column, which is its world
// column relative to the player.
func (o Obstacle) Render(dst core.Canvas, playerX, screenH int) {
	screenX := o.X - playerX
	half := o.Size / 2
	gapTop := core.Clamp(o.GapY-half, 0, screenH)
	gapBottom := core.Clamp(o.GapY+half, 0, screenH)

	// Top bar
	for y := 0; y < gapTop; y++ {
		dst.SetCell(screenX, y, core.ColorRed, core.ColorBlack, ObstacleChar)
	}

	// Bottom bar
	for y := gapBottom; y < screenH; y++ {
		dst.SetCell(screenX, y, core.ColorRed, core.ColorBlack, ObstacleChar)
	}
}

// Hits reports whether the player is in the obstacle's column and outside the gap.
func (o Obstacle) Hits(p Player) bool {
	half := o.Size / 2

	xOverlap := o.X == p.X
	yOverlap := p.Y < o.GapY-half || p.Y > o.GapY+half

	return xOverlap && yOverlap
}
