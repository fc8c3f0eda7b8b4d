package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Simulation owns the bird, the obstacle stream and the score.
// It is not safe for concurrent use; the driver calls Tick and Flap serially.
type Simulation struct {
	cfg     config.FlappyConfig
	spawner spawner

	birdY   int
	birdVel int

	obstacles []Obstacle
	score     int
	running   bool
	phase     Phase
	tick      uint64

	// Indices marked for removal during the current pass.
	pending []int
}

// NewSimulation creates a simulation in the ready phase.
// A nil rng is replaced with a time-seeded one.
func NewSimulation(cfg config.FlappyConfig, rng *rand.Rand) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulation{
		cfg:       cfg,
		spawner:   spawner{rng: rng, cfg: cfg},
		birdY:     cfg.Screen.Height / 2,
		obstacles: make([]Obstacle, 0, 4),
		phase:     PhaseReady,
	}
}

// Reset starts a fresh session.
func (s *Simulation) Reset() {
	s.birdY = s.cfg.Screen.Height / 2
	s.birdVel = 0
	s.obstacles = s.obstacles[:0]
	s.score = 0
	s.running = true
	s.phase = PhaseRunning
	s.tick = 0
}

// Flap replaces the bird's velocity with the flap impulse.
// Repeated flaps do not accumulate.
func (s *Simulation) Flap() {
	if !s.running {
		return
	}
	s.birdVel = s.cfg.Physics.FlapImpulse
}

// Tick advances the world by one step: integrate, spawn, scroll/score/collide,
// prune, bounds check.
func (s *Simulation) Tick() {
	if !s.running {
		return
	}
	s.tick++

	s.birdVel += s.cfg.Physics.Gravity
	s.birdY += s.birdVel

	if s.spawner.due(s.obstacles) {
		s.obstacles = append(s.obstacles, s.spawner.next())
	}

	// A collision abandons the pass: obstacles after the crash keep their
	// position and pending removals are dropped.
	if !s.advanceObstacles() {
		s.prune()
	}

	if s.outOfBounds() {
		s.end()
	}
}

// advanceObstacles scrolls, scores and collision-checks each obstacle in order.
// It returns true if the bird crashed.
func (s *Simulation) advanceObstacles() bool {
	s.pending = s.pending[:0]
	width := s.cfg.Obstacles.Width
	bird := s.birdBox()

	for i := range s.obstacles {
		o := &s.obstacles[i]
		o.X -= s.cfg.Physics.ScrollSpeed

		if !o.Scored && o.X+width < s.cfg.Bird.X {
			o.Scored = true
			s.score++
		}
		if o.X+width < 0 {
			s.pending = append(s.pending, i)
		}

		if bird.cols.Overlaps(o.Columns(width)) && !bird.rows.Within(o.Gap()) {
			s.end()
			return true
		}
	}
	return false
}

// prune drops the obstacles marked during the last pass, keeping spawn order.
func (s *Simulation) prune() {
	if len(s.pending) == 0 {
		return
	}
	kept := s.obstacles[:0]
	next := 0
	for i, o := range s.obstacles {
		if next < len(s.pending) && s.pending[next] == i {
			next++
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept
}

type birdBox struct {
	cols core.Span
	rows core.Span
}

func (s *Simulation) birdBox() birdBox {
	r := s.cfg.Bird.Radius
	return birdBox{
		cols: core.SpanAround(s.cfg.Bird.X, r),
		rows: core.SpanAround(s.birdY, r),
	}
}

func (s *Simulation) outOfBounds() bool {
	return s.birdY+s.cfg.Bird.Radius > s.cfg.Screen.Height || s.birdY < 0
}

func (s *Simulation) end() {
	s.running = false
	s.phase = PhaseGameOver
}

// Running reports whether ticks currently advance the simulation.
func (s *Simulation) Running() bool {
	return s.running
}

// Score returns the number of obstacles cleared this session.
func (s *Simulation) Score() int {
	return s.score
}

// Phase returns the lifecycle phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}
