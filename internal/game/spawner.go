package game

import (
	"github.com/vovakirdan/advanced-snake/internal/config"
	"github.com/vovakirdan/advanced-snake/internal/core"
)

// PowerUpKind is the tagged variant of a collectible power-up.
type PowerUpKind int

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpShrink
	PowerUpFreeze
	PowerUpShield
)

// String returns the kind name used in snapshots and logs.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpShrink:
		return "shrink"
	case PowerUpFreeze:
		return "freeze"
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Food is the growth collectible.
type Food struct {
	Pos core.Position
}

// PowerUp is a timed collectible with a kind-specific effect.
type PowerUp struct {
	Pos      core.Position
	Kind     PowerUpKind
	Duration float64 // effect duration in seconds once collected
}

// Spawner places food and power-ups on cells that are free of the snake,
// hazards, other items, and a clearance zone around the snake head. It
// draws from the shared run RNG, so placement is reproducible per seed.
type Spawner struct {
	cfg config.Config
	rng *core.Rand
}

// NewSpawner creates a spawner drawing from the given RNG.
func NewSpawner(cfg config.Config, rng *core.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// safeCells enumerates every placeable cell in row-major order: in bounds,
// not on the snake, not blocked by any hazard category, not on another
// item, and at least MinSpawnDistance from the snake head.
func (sp *Spawner) safeCells(grid Grid, snake *Snake, obstacles *ObstacleManager, taken map[core.Position]bool) []core.Position {
	head := snake.Head()
	cells := make([]core.Position, 0, grid.Width*grid.Height)
	for _, p := range grid.Cells() {
		if snake.Occupies(p) {
			continue
		}
		if obstacles.BlocksSpawn(p) {
			continue
		}
		if taken[p] {
			continue
		}
		if core.Manhattan(p, head) < sp.cfg.Spawning.MinSpawnDistance {
			continue
		}
		cells = append(cells, p)
	}
	return cells
}

// SpawnFood places food on a uniformly chosen safe cell. Returns false
// when no safe cell exists; the board stays foodless until one opens up.
func (sp *Spawner) SpawnFood(grid Grid, snake *Snake, obstacles *ObstacleManager, taken map[core.Position]bool) (Food, bool) {
	cells := sp.safeCells(grid, snake, obstacles, taken)
	pos, ok := core.Pick(sp.rng, cells)
	if !ok {
		return Food{}, false
	}
	return Food{Pos: pos}, true
}

// SpawnPowerUp picks a kind by configured weight, then a safe cell. The
// kind is drawn before the position so the RNG call order stays fixed even
// when placement fails.
func (sp *Spawner) SpawnPowerUp(grid Grid, snake *Snake, obstacles *ObstacleManager, taken map[core.Position]bool) (PowerUp, bool) {
	pu := sp.cfg.PowerUps
	kind, ok := core.WeightedPick(sp.rng, []core.Weighted[PowerUpKind]{
		{Value: PowerUpSpeed, Weight: pu.SpeedWeight},
		{Value: PowerUpShrink, Weight: pu.ShrinkWeight},
		{Value: PowerUpFreeze, Weight: pu.FreezeWeight},
		{Value: PowerUpShield, Weight: pu.ShieldWeight},
	})
	if !ok {
		return PowerUp{}, false
	}

	cells := sp.safeCells(grid, snake, obstacles, taken)
	pos, posOK := core.Pick(sp.rng, cells)
	if !posOK {
		return PowerUp{}, false
	}

	return PowerUp{Pos: pos, Kind: kind, Duration: sp.kindDuration(kind)}, true
}

func (sp *Spawner) kindDuration(kind PowerUpKind) float64 {
	pu := sp.cfg.PowerUps
	switch kind {
	case PowerUpSpeed:
		return pu.SpeedDuration
	case PowerUpShrink:
		return pu.ShrinkDuration
	case PowerUpFreeze:
		return pu.FreezeDuration
	case PowerUpShield:
		return pu.ShieldDuration
	default:
		return 0
	}
}
