package drifter

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/drift-arcade/internal/core"
	"github.com/vovakirdan/drift-arcade/internal/games/drifter/sim"
)

// withTestConfig points the game at a temp config with a fixed obstacle
// count, so tests control exactly what the world contains.
func withTestConfig(t *testing.T, obstacleCount int) {
	t.Helper()
	yaml := fmt.Sprintf(`arena:
  half_extent: 4000
obstacles:
  count: %d
  max_speed: 10.0
  max_angular_speed: 0.1
supply:
  craft_seconds: 60
  pickup_seconds: 15
difficulty:
  enabled: false
  level: 0
  scaling:
    speed_multiplier: 0.5
    extra_obstacles: 40
`, obstacleCount)

	path := filepath.Join(t.TempDir(), "drifter.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input script should match exactly.
	withTestConfig(t, 30)
	cfg := testRuntimeConfig(12345)

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i > 20 && i < 80 {
			input.Set(core.ActionThrust)
		}
		if i > 50 && i < 70 {
			input.Set(core.ActionLeft)
		}
		if i > 150 && i < 200 {
			input.Set(core.ActionRight)
			input.Set(core.ActionThrust)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("Snapshot mismatch:\n%+v\nvs\n%+v", snap1, snap2)
	}
	if snap1.Tick == 0 {
		t.Error("Expected simulation to have ticked")
	}
}

func TestFrameTickCadence(t *testing.T) {
	// At 60 platform frames per second the 30 Hz world should tick on
	// roughly every other frame, never on the first two.
	withTestConfig(t, 0)

	g := New()
	g.Reset(testRuntimeConfig(1))

	input := core.NewInputFrame()
	wantTicks := []uint32{0, 0, 1, 1, 2, 2, 3, 3, 4}
	for i, want := range wantTicks {
		g.Step(input)
		if got := g.world.Ticks(); got != want {
			t.Errorf("After frame %d: expected %d ticks, got %d", i+1, want, got)
		}
	}
}

func TestThrustMovesCraft(t *testing.T) {
	withTestConfig(t, 0)

	g := New()
	g.Reset(testRuntimeConfig(42))

	input := core.NewInputFrame()
	input.Set(core.ActionThrust)
	for i := 0; i < 40; i++ {
		g.Step(input)
	}

	snap := g.Snapshot()
	// The craft starts facing up the screen (negative world y).
	if snap.CraftY > -50 {
		t.Errorf("Expected craft to move up the arena, got y=%f", snap.CraftY)
	}
	if snap.VelY >= 0 {
		t.Errorf("Expected upward velocity, got vy=%f", snap.VelY)
	}
}

func TestTurnRotatesCraft(t *testing.T) {
	withTestConfig(t, 0)

	g := New()
	g.Reset(testRuntimeConfig(42))

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	for i := 0; i < 10; i++ {
		g.Step(input)
	}

	// 10 frames run 4 world ticks, each turning 0.15 radians.
	want := math.Pi - 4*0.15
	snap := g.Snapshot()
	if math.Abs(snap.CraftRot-want) > 1e-9 {
		t.Errorf("Expected rotation %f, got %f", want, snap.CraftRot)
	}
	if snap.CraftX != 0 || snap.CraftY != 0 {
		t.Errorf("Turning alone should not move the craft, got (%f, %f)", snap.CraftX, snap.CraftY)
	}
}

func TestPodCollectionScores(t *testing.T) {
	withTestConfig(t, 0)

	g := New()
	g.Reset(testRuntimeConfig(7))

	// Park the pod on the craft so the first tick collects it.
	pod := g.world.Entity(g.pickups[0])
	pod.Pos = sim.Vec2{}
	pod.Vel = sim.Vec2{}

	input := core.NewInputFrame()
	for i := 0; i < 4; i++ {
		g.Step(input)
	}

	// Flat bonus plus the pod's remaining air at collection time.
	if got := g.State().Score; got != 1450 {
		t.Errorf("Expected score 1450 after collection, got %d", got)
	}
	if pod.Pos == (sim.Vec2{}) {
		t.Error("Expected pod to relocate after collection")
	}
}

func TestGameOverOnAirExhaustion(t *testing.T) {
	withTestConfig(t, 0)

	g := New()
	g.Reset(testRuntimeConfig(99))

	g.world.Entity(g.craft).Air = 3

	input := core.NewInputFrame()
	for i := 0; i < 12 && !g.State().GameOver; i++ {
		g.Step(input)
	}

	if !g.State().GameOver {
		t.Fatal("Expected game over once air ran out")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Expected snapshot state %q, got %q", StateGameOver, g.Snapshot().State)
	}

	// The world freezes on game over.
	ticks := g.world.Ticks()
	for i := 0; i < 6; i++ {
		g.Step(input)
	}
	if g.world.Ticks() != ticks {
		t.Errorf("Expected frozen world, ticks went %d -> %d", ticks, g.world.Ticks())
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	withTestConfig(t, 10)

	g := New()
	g.Reset(testRuntimeConfig(99))

	g.world.Entity(g.craft).Air = 1
	input := core.NewInputFrame()
	for i := 0; i < 12 && !g.State().GameOver; i++ {
		g.Step(input)
	}
	if !g.State().GameOver {
		t.Fatal("Expected game over")
	}

	input.Clear()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.State().GameOver {
		t.Error("Expected restart to clear game over")
	}
	if g.world.Ticks() != 0 {
		t.Errorf("Expected fresh world, got %d ticks", g.world.Ticks())
	}
	wantAir := uint64(g.drifterCfg.Supply.CraftSeconds * sim.TickRate)
	if got := g.world.Entity(g.craft).Air; got != wantAir {
		t.Errorf("Expected full air %d after restart, got %d", wantAir, got)
	}
}

func TestRestartIgnoredWhileAlive(t *testing.T) {
	withTestConfig(t, 0)

	g := New()
	g.Reset(testRuntimeConfig(5))

	input := core.NewInputFrame()
	for i := 0; i < 6; i++ {
		g.Step(input)
	}
	ticks := g.world.Ticks()

	input.Set(core.ActionRestart)
	g.Step(input)

	if g.world.Ticks() < ticks {
		t.Error("Restart should not reset a live game")
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	withTestConfig(t, 30)

	g := New()
	g.Reset(testRuntimeConfig(7))

	input := core.NewInputFrame()
	for i := 0; i < 6; i++ {
		g.Step(input)
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if !g.State().Paused {
		t.Fatal("Expected pause to engage")
	}

	ticks := g.world.Ticks()
	before := g.Snapshot()
	input.Clear()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if g.world.Ticks() != ticks {
		t.Errorf("Paused world ticked: %d -> %d", ticks, g.world.Ticks())
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("Paused state changed:\n%+v\nvs\n%+v", before, after)
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if g.State().Paused {
		t.Fatal("Expected pause to release")
	}
	input.Clear()
	for i := 0; i < 4; i++ {
		g.Step(input)
	}
	if g.world.Ticks() == ticks {
		t.Error("Expected world to resume ticking")
	}
}

func TestRenderHUDAndCraft(t *testing.T) {
	withTestConfig(t, 0)

	g := New()
	g.Reset(testRuntimeConfig(3))

	input := core.NewInputFrame()
	g.Step(input)

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	hud := dst.Row(0)
	if !strings.Contains(hud, "Drifter") || !strings.Contains(hud, "Air:") {
		t.Errorf("HUD missing fields: %q", hud)
	}
	if dst.Get(0, 1) != '─' {
		t.Errorf("Expected separator row, got %q", dst.Get(0, 1))
	}

	// The camera centers on the craft, so its hull sits mid-playfield.
	cx, cy := 40, hudHeight+(24-hudHeight)/2
	if got := dst.Get(cx, cy); got != 'O' {
		t.Errorf("Expected craft hull at (%d,%d), got %q", cx, cy, got)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	withTestConfig(t, 0)

	g := New()
	g.Reset(testRuntimeConfig(3))
	g.gameOver = true

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if !strings.Contains(dst.String(), "Out of Air") {
		t.Error("Expected game over overlay")
	}
}

func TestRenderPodHint(t *testing.T) {
	withTestConfig(t, 0)

	g := New()
	g.Reset(testRuntimeConfig(11))

	// Push the pod far outside the view so only the hint can mark it.
	pod := g.world.Entity(g.pickups[0])
	pod.Pos = sim.Vec2{X: 3000, Y: 3000}
	pod.Prev.Pos = pod.Pos
	pod.Render.Pos = pod.Pos

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	found := false
	for y := hudHeight; y < 24 && !found; y++ {
		for x := 0; x < 80; x++ {
			cell := dst.GetCell(x, y)
			if cell.Color == core.ColorBrightCyan {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("Expected an edge hint pointing at the off-screen pod")
	}
}

func TestTapSurvivesTickGap(t *testing.T) {
	// A tap that lands on a frame with no due tick must still thrust on
	// the next tick: presses go out before the frame's update and
	// releases after, so the following frame's tick sees the key down.
	withTestConfig(t, 0)

	g := New()
	g.Reset(testRuntimeConfig(21))

	input := core.NewInputFrame()
	g.Step(input) // frame 1: no tick due

	input.Set(core.ActionThrust)
	g.Step(input) // frame 2: tap lands, still no tick due

	input.Clear()
	g.Step(input) // frame 3: tick fires before the release goes out

	snap := g.Snapshot()
	if snap.VelY == 0 {
		t.Error("Expected the tap to reach at least one tick of thrust")
	}
}

func TestRegistryRegistration(t *testing.T) {
	g := New()
	if g.ID() != "drifter" {
		t.Errorf("Expected ID drifter, got %q", g.ID())
	}
	if g.Title() != "Drifter" {
		t.Errorf("Expected title Drifter, got %q", g.Title())
	}
}
