package drifter

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     uint32
	Score    int
	AirTicks uint64
	CraftX   float64
	CraftY   float64
	CraftRot float64
	VelX     float64
	VelY     float64
	Entities int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	craft := *g.world.Entity(g.craft)

	return Snapshot{
		Tick:     g.world.Ticks(),
		Score:    int(craft.Score),
		AirTicks: craft.Air,
		CraftX:   craft.Pos.X,
		CraftY:   craft.Pos.Y,
		CraftRot: craft.Rot,
		VelX:     craft.Vel.X,
		VelY:     craft.Vel.Y,
		Entities: g.world.EntityCount(),
		State:    state,
	}
}
