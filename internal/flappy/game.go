// Package flappy implements the Flappy Bird simulation.
// The bird falls under gravity, flaps upward on demand, and must pass
// through the gap of each wall it meets. The package only draws into a
// core.Canvas and reads core.Event values; the host owns the terminal.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Mode is the state of the game's state machine.
type Mode int

const (
	ModeMenu    Mode = iota // Title screen, before the first run
	ModePlaying             // A run is in progress
	ModeDead                // The last run ended
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Game owns the whole simulation: mode, player, the single obstacle,
// score and the physics time accumulator. It is not safe for concurrent use;
// the host calls Advance once per frame from one goroutine.
type Game struct {
	cfg       config.GameConfig
	rng       Rand
	mode      Mode
	player    Player
	obstacle  Obstacle
	frameTime float64 // Milliseconds accumulated since the last physics tick
	score     int
	ticks     int // Physics ticks in the current run
	best      int // Best score known to this game
}

// New creates a game in menu mode. The configuration is validated here so a
// bad setup fails before the first frame.
func New(cfg config.GameConfig, rng Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", config.ErrInvalid)
	}

	g := &Game{
		cfg:  cfg,
		rng:  rng,
		mode: ModeMenu,
	}
	g.reset()
	return g, nil
}

// NewWithSeed creates a game whose obstacle sequence is fixed by seed.
func NewWithSeed(cfg config.GameConfig, seed int64) (*Game, error) {
	return New(cfg, rand.New(rand.NewSource(seed)))
}

// Advance runs one frame. The handler is picked from the mode at entry, so a
// frame that changes mode still draws the old mode's screen; the new mode
// takes over on the next call.
func (g *Game) Advance(elapsedMs float64, ev core.Event, dst core.Canvas) {
	switch g.mode {
	case ModeMenu:
		g.updateMenu(ev, dst)
	case ModePlaying:
		g.updatePlaying(elapsedMs, ev, dst)
	case ModeDead:
		g.updateDead(ev, dst)
	}
}

// restart begins a new run.
func (g *Game) restart() {
	g.mode = ModePlaying
	g.reset()
}

// reset puts the player at the start with a fresh widest-gap obstacle one
// screen ahead.
func (g *Game) reset() {
	start := g.cfg.Player
	g.player = NewPlayer(start.StartX, start.StartY)
	g.frameTime = 0
	g.score = 0
	g.ticks = 0
	g.obstacle = NewObstacle(start.StartX+g.cfg.Screen.Width, 0, g.cfg.Obstacles, g.rng)
}

func (g *Game) updateMenu(ev core.Event, dst core.Canvas) {
	dst.Clear()
	dst.PrintCentered(5, "Welcome to Flappy Bird")
	dst.PrintCentered(8, "(P) Play Game")
	dst.PrintCentered(9, "(Q) Quit Game")

	switch ev {
	case core.EventConfirm:
		g.restart()
	case core.EventQuit:
		dst.RequestQuit()
	}
}

func (g *Game) updatePlaying(elapsedMs float64, ev core.Event, dst core.Canvas) {
	dst.ClearBackground(core.ColorNavy)

	g.frameTime += elapsedMs
	if g.frameTime > g.cfg.Physics.TickThresholdMs {
		g.frameTime = 0
		g.player.GravityAndMove(g.cfg.Physics)
		g.ticks++
	}

	if ev == core.EventFlap {
		g.player.Flap(g.cfg.Physics.FlapImpulse)
	}

	g.player.Render(dst)
	g.obstacle.Render(dst, g.player.X, g.cfg.Screen.Height)
	dst.Print(0, 0, "Press Space to Flap")
	dst.Print(0, 1, fmt.Sprintf("Your score: %d", g.score))

	// Score and spawn the next obstacle before the death check, so the
	// replaced obstacle is never tested against the player.
	if g.player.X > g.obstacle.X {
		g.score++
		g.obstacle = NewObstacle(g.player.X+g.cfg.Screen.Width, g.score, g.cfg.Obstacles, g.rng)
	}

	if g.player.Y > g.cfg.Screen.Height || g.obstacle.Hits(g.player) {
		g.mode = ModeDead
		if g.score > g.best {
			g.best = g.score
		}
	}
}

func (g *Game) updateDead(ev core.Event, dst core.Canvas) {
	dst.Clear()
	dst.PrintCentered(5, "You are dead")
	dst.PrintCentered(6, fmt.Sprintf("Your final score is: %d !!", g.score))
	if g.best > 0 {
		dst.PrintCentered(7, fmt.Sprintf("Best: %d", g.best))
	}
	dst.PrintCentered(8, "(P) Play Again")
	dst.PrintCentered(9, "(Q) Quit Game")

	switch ev {
	case core.EventConfirm:
		g.restart()
	case core.EventQuit:
		dst.RequestQuit()
	}
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the number of obstacles passed in the current or last run.
func (g *Game) Score() int {
	return g.score
}

// Ticks returns the number of physics ticks in the current or last run.
func (g *Game) Ticks() int {
	return g.ticks
}

// Best returns the best score known to this game.
func (g *Game) Best() int {
	return g.best
}

// SetBest seeds the best score, typically from stored history.
func (g *Game) SetBest(best int) {
	if best > g.best {
		g.best = best
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Obstacle returns a copy of the current obstacle.
func (g *Game) Obstacle() Obstacle {
	return g.obstacle
}
