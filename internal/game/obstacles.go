package game

import "github.com/vovakirdan/advanced-snake/internal/core"

// MovingHazard is a single-cell patroller that bounces between blockers.
type MovingHazard struct {
	Pos core.Position
	Dir core.Direction
}

// Gate is a cell that alternates between passable and solid on a timer.
type Gate struct {
	Pos        core.Position
	Active     bool
	NextToggle float64 // game-clock seconds
}

// ObstacleManager owns all non-snake, non-item occupancy: static clusters,
// patrolling movers, toggling gates, decaying tiles, and the boss core.
// Every category is rebuilt together when the level changes.
type ObstacleManager struct {
	static    map[core.Position]bool
	moving    []MovingHazard
	gates     []Gate
	crumbling map[core.Position]float64 // position -> expiry, game-clock seconds
	bossCore  map[core.Position]bool

	blockMax     int     // max static cluster size
	minDistance  int     // Manhattan clearance from the snake head
	moveStep     float64 // seconds between mover steps
	gateOn       float64
	gateOff      float64
	gateDefer    float64
	crumbleLife  float64
	bossCoreSize int

	moveAccum float64
}

// ObstacleParams bundles the generation tunables the manager needs.
type ObstacleParams struct {
	BlockMax        int
	MinDistance     int
	MoveStep        float64
	GateOn          float64
	GateOff         float64
	GateDefer       float64
	CrumbleLifetime float64
	BossCoreSize    int
}

// NewObstacleManager creates an empty manager.
func NewObstacleManager(p ObstacleParams) *ObstacleManager {
	m := &ObstacleManager{
		blockMax:     p.BlockMax,
		minDistance:  p.MinDistance,
		moveStep:     p.MoveStep,
		gateOn:       p.GateOn,
		gateOff:      p.GateOff,
		gateDefer:    p.GateDefer,
		crumbleLife:  p.CrumbleLifetime,
		bossCoreSize: p.BossCoreSize,
	}
	m.Clear()
	return m
}

// Clear removes all obstacles and hazards.
func (m *ObstacleManager) Clear() {
	m.static = make(map[core.Position]bool)
	m.moving = nil
	m.gates = nil
	m.crumbling = make(map[core.Position]float64)
	m.bossCore = make(map[core.Position]bool)
	m.moveAccum = 0
}

// Static returns the static obstacle cells.
func (m *ObstacleManager) Static() map[core.Position]bool {
	return m.static
}

// Moving returns the current movers.
func (m *ObstacleManager) Moving() []MovingHazard {
	return m.moving
}

// Gates returns the current gates.
func (m *ObstacleManager) Gates() []Gate {
	return m.gates
}

// Crumbling returns the decaying tiles with their expiry times.
func (m *ObstacleManager) Crumbling() map[core.Position]float64 {
	return m.crumbling
}

// BossCore returns the boss-core cells, empty outside boss levels.
func (m *ObstacleManager) BossCore() map[core.Position]bool {
	return m.bossCore
}

// allPositions returns every occupied hazard cell. Inactive gates are
// included unless activeGatesOnly is set: passable gates still block
// spawning, they just don't collide.
func (m *ObstacleManager) allPositions(activeGatesOnly bool) map[core.Position]bool {
	out := make(map[core.Position]bool, len(m.static)+len(m.bossCore)+len(m.crumbling)+len(m.moving)+len(m.gates))
	for p := range m.static {
		out[p] = true
	}
	for p := range m.bossCore {
		out[p] = true
	}
	for p := range m.crumbling {
		out[p] = true
	}
	for _, mv := range m.moving {
		out[mv.Pos] = true
	}
	for _, g := range m.gates {
		if !activeGatesOnly || g.Active {
			out[g.Pos] = true
		}
	}
	return out
}

// BlocksSpawn returns true if the position is occupied by any hazard
// category regardless of gate state. Food and power-ups must never appear
// on a gate cell even while it is passable.
func (m *ObstacleManager) BlocksSpawn(p core.Position) bool {
	return m.allPositions(false)[p]
}

// Collides returns true if entering the position is fatal right now:
// a static obstacle, boss-core cell, crumbling tile, mover, or active gate.
func (m *ObstacleManager) Collides(p core.Position) bool {
	if m.static[p] || m.bossCore[p] || m.crumbling[p] > 0 {
		return true
	}
	for _, mv := range m.moving {
		if mv.Pos == p {
			return true
		}
	}
	for _, g := range m.gates {
		if g.Active && g.Pos == p {
			return true
		}
	}
	return false
}

// Update advances mover steps, gate timers, and crumble expiry by dt.
// now is the simulation's monotonic game clock.
func (m *ObstacleManager) Update(now, dt float64, grid Grid, snakeCells map[core.Position]bool) {
	// Movers advance in fixed sub-steps for a consistent feel regardless
	// of the snake's tick rate.
	m.moveAccum += dt
	for m.moveAccum >= m.moveStep {
		m.moveAccum -= m.moveStep
		m.stepMoving(grid, snakeCells)
	}

	for i := range m.gates {
		g := &m.gates[i]
		if now < g.NextToggle {
			continue
		}
		if g.Active {
			g.Active = false
			g.NextToggle = now + m.gateOff
			continue
		}
		// Never close a gate on top of the snake; try again shortly.
		if snakeCells[g.Pos] {
			g.NextToggle = now + m.gateDefer
			continue
		}
		g.Active = true
		g.NextToggle = now + m.gateOn
	}

	for p, end := range m.crumbling {
		if end <= now {
			delete(m.crumbling, p)
		}
	}
}

// stepMoving advances every mover one cell. Movers resolve in slice order,
// so no two claim the same destination within a step: each sees the cells
// already taken by earlier movers this step. A blocked mover reverses and
// retries once; still blocked, it stays put.
func (m *ObstacleManager) stepMoving(grid Grid, snakeCells map[core.Position]bool) {
	blocked := m.allPositions(false)
	for p := range snakeCells {
		blocked[p] = true
	}
	claimed := make(map[core.Position]bool, len(m.moving))

	for i := range m.moving {
		mv := &m.moving[i]
		delete(blocked, mv.Pos)

		candidate := mv.Pos.Add(mv.Dir)
		if !grid.InBounds(candidate) || blocked[candidate] || claimed[candidate] {
			mv.Dir = mv.Dir.Reversed()
			candidate = mv.Pos.Add(mv.Dir)
			if !grid.InBounds(candidate) || blocked[candidate] || claimed[candidate] {
				candidate = mv.Pos
			}
		}
		mv.Pos = candidate
		claimed[candidate] = true
	}
}

// BuildForLevel regenerates every hazard category for a level. Placement
// uses rejection sampling against the running occupied set; a failed
// placement silently yields fewer hazards than requested, never an error.
// The RNG call order here is fixed (boss core, statics, movers, gates,
// crumbling) to keep seeded runs reproducible.
func (m *ObstacleManager) BuildForLevel(lc LevelConfig, grid Grid, snakeCells map[core.Position]bool, head core.Position, rng *core.Rand, now float64) {
	m.Clear()
	occupied := make(map[core.Position]bool, len(snakeCells))
	for p := range snakeCells {
		occupied[p] = true
	}

	if lc.Boss {
		if block := m.placeBossCore(grid, occupied, head, rng); block != nil {
			for _, p := range block {
				m.bossCore[p] = true
				occupied[p] = true
			}
		}
	}

	m.buildStatic(lc.Obstacles, grid, occupied, head, rng)
	m.spawnMoving(lc.Moving, grid, occupied, head, rng)
	m.spawnGates(lc.Gates, grid, occupied, head, rng, now)
	m.spawnCrumbling(lc.Crumble, grid, occupied, head, rng, now)
}

// buildStatic places clustered square blocks until the cell target is
// reached or the retry budget runs out. A cluster is rejected whole if any
// of its cells is occupied or too close to the head.
func (m *ObstacleManager) buildStatic(count int, grid Grid, occupied map[core.Position]bool, head core.Position, rng *core.Rand) {
	attempts := 0
	budget := core.Max(12, count*12)
	for len(m.static) < count && attempts < budget {
		attempts++
		blockSize := rng.IntBetween(1, m.blockMax)
		ox := rng.IntBetween(0, core.Max(0, grid.Width-blockSize))
		oy := rng.IntBetween(0, core.Max(0, grid.Height-blockSize))

		cells := make([]core.Position, 0, blockSize*blockSize)
		rejected := false
		for y := oy; y < oy+blockSize && !rejected; y++ {
			for x := ox; x < ox+blockSize; x++ {
				p := core.Position{X: x, Y: y}
				if occupied[p] || core.Manhattan(p, head) < m.minDistance {
					rejected = true
					break
				}
				cells = append(cells, p)
			}
		}
		if rejected {
			continue
		}

		for _, p := range cells {
			m.static[p] = true
			occupied[p] = true
		}
	}
}

func (m *ObstacleManager) spawnMoving(count int, grid Grid, occupied map[core.Position]bool, head core.Position, rng *core.Rand) {
	for i := 0; i < count; i++ {
		pos, ok := m.findOpenCell(grid, occupied, head, rng)
		if !ok {
			break
		}
		dir, _ := core.Pick(rng, core.Directions)
		m.moving = append(m.moving, MovingHazard{Pos: pos, Dir: dir})
		occupied[pos] = true
	}
}

func (m *ObstacleManager) spawnGates(count int, grid Grid, occupied map[core.Position]bool, head core.Position, rng *core.Rand, now float64) {
	for i := 0; i < count; i++ {
		pos, ok := m.findOpenCell(grid, occupied, head, rng)
		if !ok {
			break
		}
		// Desynchronize gates by starting each at a random phase.
		active := rng.Bool()
		offset := rng.Float64() * (m.gateOn + m.gateOff)
		m.gates = append(m.gates, Gate{Pos: pos, Active: active, NextToggle: now + offset})
		occupied[pos] = true
	}
}

func (m *ObstacleManager) spawnCrumbling(count int, grid Grid, occupied map[core.Position]bool, head core.Position, rng *core.Rand, now float64) {
	for i := 0; i < count; i++ {
		pos, ok := m.findOpenCell(grid, occupied, head, rng)
		if !ok {
			break
		}
		m.crumbling[pos] = now + m.crumbleLife
		occupied[pos] = true
	}
}

// findOpenCell rejection-samples a free cell away from the snake head.
// Bounded attempts; failure means the board is crowded, not broken.
func (m *ObstacleManager) findOpenCell(grid Grid, occupied map[core.Position]bool, head core.Position, rng *core.Rand) (core.Position, bool) {
	for i := 0; i < 140; i++ {
		p := core.Position{
			X: rng.IntBetween(0, grid.Width-1),
			Y: rng.IntBetween(0, grid.Height-1),
		}
		if occupied[p] {
			continue
		}
		if core.Manhattan(p, head) < m.minDistance {
			continue
		}
		return p, true
	}
	return core.Position{}, false
}

// placeBossCore tries to place a solid square block away from the walls
// and with extra clearance from the snake head. Returns nil if no spot
// was found within the retry budget.
func (m *ObstacleManager) placeBossCore(grid Grid, occupied map[core.Position]bool, head core.Position, rng *core.Rand) []core.Position {
	size := m.bossCoreSize
	if size < 1 {
		size = 3
	}
	for attempt := 0; attempt < 80; attempt++ {
		ox := rng.IntBetween(1, core.Max(1, grid.Width-size-1))
		oy := rng.IntBetween(1, core.Max(1, grid.Height-size-1))

		cells := make([]core.Position, 0, size*size)
		rejected := false
		for y := oy; y < oy+size && !rejected; y++ {
			for x := ox; x < ox+size; x++ {
				p := core.Position{X: x, Y: y}
				if occupied[p] || core.Manhattan(p, head) < m.minDistance+2 {
					rejected = true
					break
				}
				cells = append(cells, p)
			}
		}
		if !rejected {
			return cells
		}
	}
	return nil
}
