package flappy

// Phase is the lifecycle state of a simulation.
type Phase string

const (
	PhaseReady    Phase = "ready"     // Constructed, never reset
	PhaseRunning  Phase = "running"   // Ticks advance the world
	PhaseGameOver Phase = "game_over" // Crashed; waits for Reset
)

// Snapshot is a read-only copy of the simulation state for rendering and tests.
type Snapshot struct {
	Tick      uint64
	BirdX     int
	BirdY     int
	BirdVelY  int
	Obstacles []Obstacle
	Score     int
	Running   bool
	Phase     Phase
}

// Snapshot returns the current state. The obstacle slice is a copy.
func (s *Simulation) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(s.obstacles))
	copy(obstacles, s.obstacles)

	return Snapshot{
		Tick:      s.tick,
		BirdX:     s.cfg.Bird.X,
		BirdY:     s.birdY,
		BirdVelY:  s.birdVel,
		Obstacles: obstacles,
		Score:     s.score,
		Running:   s.running,
		Phase:     s.phase,
	}
}
