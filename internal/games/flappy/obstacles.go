package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a vertical barrier with a passable gap between GapTop and GapBottom.
type Obstacle struct {
	X         int  // Horizontal position (left edge)
	GapTop    int  // Y where the gap starts
	GapBottom int  // Y where the gap ends
	Scored    bool // Whether the bird has cleared this obstacle
}

// Columns returns the horizontal extent of the obstacle.
func (o Obstacle) Columns(width int) core.Span {
	return core.Span{Lo: o.X, Hi: o.X + width}
}

// Gap returns the vertical extent of the passable gap.
func (o Obstacle) Gap() core.Span {
	return core.Span{Lo: o.GapTop, Hi: o.GapBottom}
}

// spawner decides when a new obstacle enters and where its gap sits.
type spawner struct {
	rng *rand.Rand
	cfg config.FlappyConfig
}

// due reports whether a new obstacle should be appended.
func (sp *spawner) due(obstacles []Obstacle) bool {
	if len(obstacles) == 0 {
		return true
	}
	last := obstacles[len(obstacles)-1]
	return last.X < sp.cfg.Screen.Width-sp.cfg.Obstacles.Spacing
}

// next builds an obstacle at the right edge of the playfield.
func (sp *spawner) next() Obstacle {
	obs := sp.cfg.Obstacles
	centerY := obs.GapCenterMin + sp.rng.Intn(obs.GapCenterRange)
	return Obstacle{
		X:         sp.cfg.Screen.Width,
		GapTop:    centerY - obs.GapHeight/2,
		GapBottom: centerY + obs.GapHeight/2,
	}
}
