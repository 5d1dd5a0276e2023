package game

import "github.com/vovakirdan/advanced-snake/internal/core"

// Snapshot captures the observable simulation state at one frame. Used for
// determinism tests and by the platform layer for HUD details the coarse
// GameState does not carry.
type Snapshot struct {
	Clock  float64
	Status Status

	Score     int
	Streak    int
	Level     int
	BossLevel bool

	SnakeLen int
	Head     core.Position
	Dir      core.Direction
	Body     []core.Position

	Food    *core.Position
	PowerUp *PowerUp

	StaticObstacles map[core.Position]bool
	BossCore        map[core.Position]bool
	Moving          []MovingHazard
	Gates           []Gate
	Crumbling       map[core.Position]float64

	ActiveEffects []PowerUpKind
	ShieldReady   bool
	Frozen        bool

	LevelIntro bool // level banner still showing
}

// Snapshot returns the current frame's observable state. Maps and slices
// are copied; mutating the snapshot never touches the simulation.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Clock:           g.clock,
		Status:          g.status,
		Score:           g.score,
		Streak:          g.streak,
		Level:           g.levels.Level(),
		BossLevel:       g.levelCfg.Boss,
		SnakeLen:        g.snake.Len(),
		Head:            g.snake.Head(),
		Dir:             g.snake.Direction(),
		Body:            g.snake.Body(),
		StaticObstacles: copyPosSet(g.obstacles.Static()),
		BossCore:        copyPosSet(g.obstacles.BossCore()),
		Moving:          append([]MovingHazard(nil), g.obstacles.Moving()...),
		Gates:           append([]Gate(nil), g.obstacles.Gates()...),
		Crumbling:       copyPosMap(g.obstacles.Crumbling()),
		ActiveEffects:   g.effects.ActiveKinds(g.clock),
		ShieldReady:     g.effects.ShieldReady(g.clock),
		Frozen:          g.effects.FrozenAt(g.clock),
		LevelIntro:      g.clock < g.levelIntroOver,
	}
	if g.food != nil {
		p := g.food.Pos
		s.Food = &p
	}
	if g.powerUp != nil {
		pu := *g.powerUp
		s.PowerUp = &pu
	}
	return s
}

func copyPosSet(in map[core.Position]bool) map[core.Position]bool {
	out := make(map[core.Position]bool, len(in))
	for p := range in {
		out[p] = true
	}
	return out
}

func copyPosMap(in map[core.Position]float64) map[core.Position]float64 {
	out := make(map[core.Position]float64, len(in))
	for p, v := range in {
		out[p] = v
	}
	return out
}
