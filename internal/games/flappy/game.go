// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
)

// Game adapts a Simulation to the frame-based platform contract and draws it
// onto a character screen.
type Game struct {
	cfg config.FlappyConfig
	sim *Simulation
}

// New creates a new Flappy Bird game instance.
func New(cfg config.FlappyConfig) *Game {
	return &Game{
		cfg: cfg,
		sim: NewSimulation(cfg, nil),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset starts a new session seeded from the runtime config.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.sim = NewSimulation(g.cfg, rand.New(rand.NewSource(seed)))
	g.sim.Reset()
}

// Step applies this frame's input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.sim.Running() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.sim.Flap()
	}
	g.sim.Tick()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		Running:  g.sim.Running(),
		GameOver: g.sim.Phase() == PhaseGameOver,
	}
}

// Snapshot returns the simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Render draws the current game state to the screen, scaling the logical
// playfield onto the available cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.sim.Snapshot()

	for _, o := range snap.Obstacles {
		g.drawPipe(dst, o)
	}

	bx := g.col(dst, snap.BirdX)
	by := core.Clamp(g.row(dst, snap.BirdY), 0, dst.Height()-1)
	dst.SetColor(bx, by, BirdChar, core.ColorBrightYellow)

	// Draw HUD
	dst.DrawTextColor(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
}

// drawPipe renders the top and bottom sections of one obstacle.
func (g *Game) drawPipe(dst *core.Screen, o Obstacle) {
	left := g.col(dst, o.X)
	right := core.Max(g.col(dst, o.X+g.cfg.Obstacles.Width), left+1)
	gapTop := g.row(dst, o.GapTop)
	gapBottom := g.row(dst, o.GapBottom)

	dst.FillRect(core.NewRect(left, 0, right-left, gapTop), PipeChar, core.ColorGreen)
	dst.FillRect(core.NewRect(left, gapBottom, right-left, dst.Height()-gapBottom), PipeChar, core.ColorGreen)

	// Caps facing the gap
	for x := left; x < right; x++ {
		if gapTop > 0 {
			dst.SetColor(x, gapTop-1, PipeCapTop, core.ColorBrightGreen)
		}
		if gapBottom < dst.Height() {
			dst.SetColor(x, gapBottom, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

func (g *Game) col(dst *core.Screen, x int) int {
	return core.Scale(x, g.cfg.Screen.Width, dst.Width())
}

func (g *Game) row(dst *core.Screen, y int) int {
	return core.Scale(y, g.cfg.Screen.Height, dst.Height())
}
