// Package drifter implements the Drifter game: pilot a thruster craft
// through a field of drifting obstacles and reach the air pod before the
// tank runs dry. The physics live in the sim subpackage; this package
// adapts them to the platform's frame loop and character screen.
package drifter

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/drift-arcade/internal/config"
	"github.com/vovakirdan/drift-arcade/internal/core"
	"github.com/vovakirdan/drift-arcade/internal/games/drifter/sim"
	"github.com/vovakirdan/drift-arcade/internal/registry"
)

// Game implements the platform game interface on top of a sim.World.
type Game struct {
	cfg     core.RuntimeConfig
	rng     *rand.Rand
	world   *sim.World
	craft   sim.EntityID
	pickups []sim.EntityID

	// frameDur is the virtual time fed to the world per platform frame.
	// Feeding a fixed duration instead of wall time keeps identical input
	// sequences reproducible.
	frameDur time.Duration

	// held mirrors what the world currently believes about each key, so
	// per-frame action sets can be diffed into press/release edges.
	held [3]bool

	drifterCfg config.DrifterConfig
	difficulty *config.DifficultyManager
	stars      []star

	startedAt time.Time
	gameOver  bool
	paused    bool
}

// Package-level knobs set by the host before Reset builds a world.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new Drifter game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "drifter",
		Title:       "Drifter",
		Description: "Collect air pods before the tank runs dry.",
	}, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "drifter"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Drifter"
}

// Reset builds a fresh world from config: one craft at the arena center,
// a field of drifting obstacles, and a single air pod.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.gameOver = false
	g.paused = false
	g.held = [3]bool{}
	g.startedAt = time.Now()

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frameDur = time.Second / time.Duration(tickRate)

	dc, err := config.LoadDrifter(configPath)
	if err != nil {
		dc = config.DefaultDrifterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDrifterPreset(&dc, config.DifficultyPreset(difficultyPreset))
	}
	g.drifterCfg = dc
	g.difficulty = config.NewDifficultyManager(dc.Difficulty)

	obstacleCount := g.difficulty.ObstacleCount(dc.Obstacles.Count)
	maxSpeed := g.difficulty.Speed(dc.Obstacles.MaxSpeed)
	maxSpin := dc.Obstacles.MaxAngularSpeed

	w := sim.NewWorld(uint64(cfg.Seed), dc.Arena.HalfExtent)
	w.SetSupplyTicks(
		uint64(dc.Supply.CraftSeconds*sim.TickRate),
		uint64(dc.Supply.PickupSeconds*sim.TickRate),
	)

	// The craft spawns at the arena center; a zero-area rect pins the
	// sample to that exact point.
	origin := sim.Rect{}
	g.craft = w.AddCraft(origin)
	w.SetControlledEntity(g.craft)

	for i := 0; i < obstacleCount; i++ {
		// Placement can fail when the sampled spot stays occupied after
		// the retry budget; a slightly sparser field is fine.
		w.AddObstacle(w.Bounds(), sim.Span{Lo: 0, Hi: maxSpeed}, sim.Span{Lo: 0, Hi: maxSpin})
	}

	g.pickups = g.pickups[:0]
	g.pickups = append(g.pickups, w.AddPickup(w.Bounds()))

	g.makeStars()
	g.world = w
}

// Step advances the game by one platform frame: map held actions to key
// edges, run the due simulation ticks, then refresh render transforms.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.cfg.ScreenW,
			ScreenH:  g.cfg.ScreenH,
			TickRate: g.cfg.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	// Presses go in before the frame's ticks, releases after, so a tap
	// that lands on a frame with no due tick still reaches the next one.
	g.sendEdges(input, true)
	g.world.Update(g.frameDur)
	g.world.InterpolateTransforms()
	g.sendEdges(input, false)

	if g.world.Entity(g.craft).Air == 0 {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// keyActions pairs each simulation key with the platform action that
// drives it.
var keyActions = [3]struct {
	key    sim.Key
	action core.Action
}{
	{sim.KeyLeft, core.ActionLeft},
	{sim.KeyRight, core.ActionRight},
	{sim.KeyThrust, core.ActionThrust},
}

// sendEdges diffs the frame's action set against the held state and emits
// the matching key edges, presses or releases only per call.
func (g *Game) sendEdges(input core.InputFrame, presses bool) {
	for i, ka := range keyActions {
		want := input.Has(ka.action)
		if want == g.held[i] || want != presses {
			continue
		}
		g.world.HandleInput(sim.InputEvent{Key: ka.key, Pressed: want})
		g.held[i] = want
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = int(g.world.Entity(g.craft).Score)
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// AirSeconds returns the craft's remaining air in seconds.
func (g *Game) AirSeconds() float64 {
	return float64(g.world.Entity(g.craft).Air) / sim.TickRate
}

// Duration returns how long the current run has been going.
func (g *Game) Duration() time.Duration {
	return time.Since(g.startedAt)
}

// Seed returns the seed the current world was built from.
func (g *Game) Seed() int64 {
	return int64(g.world.Seed())
}
