package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: core.DefaultTickRate,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Flap every 8 ticks to try to stay airborne
	inputSequence := make([]core.InputFrame, 200)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%8 == 0 {
			inputSequence[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := New(config.DefaultFlappyConfig())
		g.Reset(testRuntime(12345))
		for _, in := range inputSequence {
			if result := g.Step(in); !result.State.Running {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Score != s2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", s1.Score, s2.Score)
	}
	if s1.Tick != s2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", s1.Tick, s2.Tick)
	}
	if len(s1.Obstacles) != len(s2.Obstacles) {
		t.Fatalf("Determinism failed: obstacle counts differ. Run1=%d, Run2=%d", len(s1.Obstacles), len(s2.Obstacles))
	}
	for i := range s1.Obstacles {
		if s1.Obstacles[i] != s2.Obstacles[i] {
			t.Errorf("Determinism failed: obstacle %d differs. Run1=%+v, Run2=%+v", i, s1.Obstacles[i], s2.Obstacles[i])
		}
	}
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	if g.ID() != "flappy" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Title() != "Flappy Bird" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameBeforeReset(t *testing.T) {
	g := New(config.DefaultFlappyConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	result := g.Step(in)

	if result.State.Running || result.State.GameOver {
		t.Errorf("game should be idle before Reset, got %+v", result.State)
	}
	if g.Snapshot().Tick != 0 {
		t.Error("Step before Reset should not tick")
	}
}

func TestGameJumpPhysics(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(1))

	jumpInput := core.NewInputFrame()
	jumpInput.Set(core.ActionJump)
	g.Step(jumpInput)

	snap := g.Snapshot()
	if snap.BirdVelY != -9 {
		t.Errorf("velocity after flap = %d, expected -9", snap.BirdVelY)
	}
	if snap.BirdY != 291 {
		t.Errorf("y after flap = %d, expected 291", snap.BirdY)
	}
}

func TestGameOverStopsStepping(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(testRuntime(1))

	noInput := core.NewInputFrame()
	var result core.StepResult
	for i := 0; i < 100; i++ {
		result = g.Step(noInput)
	}

	if !result.State.GameOver || result.State.Running {
		t.Fatalf("free fall should end the game, got %+v", result.State)
	}
	if tick := g.Snapshot().Tick; tick != 24 {
		t.Errorf("ticks after game over should be ignored, tick = %d", tick)
	}

	g.Reset(testRuntime(2))
	if st := g.State(); !st.Running || st.GameOver || st.Score != 0 {
		t.Errorf("Reset should start a fresh session, got %+v", st)
	}
}

func TestGameRender(t *testing.T) {
	rc := testRuntime(1)
	g := New(config.DefaultFlappyConfig())
	g.Reset(rc)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	g.Render(screen)

	// Bird at (100, 301) maps to column 20, row 12
	if got := screen.GetCell(20, 12); got.Rune != BirdChar || got.Color != core.ColorBrightYellow {
		t.Errorf("bird cell = %+v, expected yellow %q", got, BirdChar)
	}

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing from first row: %q", screen.Row(0))
	}

	// The fresh obstacle sits at X 397, which is the last column.
	// Gap rows are between 2 and 17, so the bottom row is solid pipe.
	bottom := screen.GetCell(79, rc.ScreenH-1)
	if bottom.Rune != PipeChar || bottom.Color != core.ColorGreen {
		t.Errorf("pipe cell = %+v, expected green %q", bottom, PipeChar)
	}
}

func TestGameRenderGapIsOpen(t *testing.T) {
	rc := testRuntime(1)
	g := New(config.DefaultFlappyConfig())
	g.Reset(rc)
	g.sim.obstacles = append(g.sim.obstacles, Obstacle{X: 200, GapTop: 200, GapBottom: 400})

	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	g.Render(screen)

	// X 200..270 maps to columns 40..53, gap rows 8..16
	if screen.Get(40, 2) != PipeChar {
		t.Errorf("top section missing, got %q", screen.Get(40, 2))
	}
	if screen.Get(40, 7) != PipeCapTop {
		t.Errorf("top cap missing, got %q", screen.Get(40, 7))
	}
	if screen.Get(40, 12) != ' ' {
		t.Errorf("gap should be open, got %q", screen.Get(40, 12))
	}
	if screen.Get(40, 16) != PipeCapBottom {
		t.Errorf("bottom cap missing, got %q", screen.Get(40, 16))
	}
	if screen.Get(53, 20) != PipeChar {
		t.Errorf("pipe should span to column 53, got %q", screen.Get(53, 20))
	}
	if screen.Get(54, 20) != ' ' {
		t.Errorf("pipe should end before column 54, got %q", screen.Get(54, 20))
	}
}
