package game

import (
	"github.com/vovakirdan/advanced-snake/internal/config"
	"github.com/vovakirdan/advanced-snake/internal/core"
)

// Status is the run lifecycle state.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusEnded
)

// RunSummary describes one finished run for storage and the game-over
// screen.
type RunSummary struct {
	Score     int
	Level     int
	MaxLength int
	FoodEaten int
	PowerUps  map[PowerUpKind]int
	Duration  float64 // seconds of simulation time
	Seed      int64
}

// TotalPowerUps sums the per-kind pickup counts.
func (r RunSummary) TotalPowerUps() int {
	total := 0
	for _, n := range r.PowerUps {
		total += n
	}
	return total
}

// Game is the advanced snake simulation. Step is driven at the platform's
// frame rate; an internal accumulator converts frame time into whole snake
// ticks, so movement speed is independent of the render rate. All
// randomness flows through one seeded RNG and all timing through the
// game-owned clock, making runs reproducible per (seed, input sequence).
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig

	grid      Grid
	snake     *Snake
	levels    *LevelManager
	obstacles *ObstacleManager
	spawner   *Spawner
	effects   *EffectManager
	rng       *core.Rand

	clock       float64 // simulation seconds, frozen while paused
	accumulator float64
	levelCfg    LevelConfig

	food    *Food
	powerUp *PowerUp

	nextPowerUpAt float64

	score      int
	streak     int
	lastFoodAt float64
	foodEaten  int
	maxLength  int
	powerUps   map[PowerUpKind]int

	status         Status
	levelIntroOver float64 // clock second the level banner disappears

	palette Palette
}

// New creates an unstarted game; call Reset before stepping.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg, palette: DefaultPalette()}
}

// ID returns the registry identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Advanced Snake" }

// Reset starts a fresh run from the runtime settings. The seed fully
// determines hazard layouts and item placement.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = rc
	g.grid = Grid{Width: g.cfg.Grid.Width, Height: g.cfg.Grid.Height}
	g.rng = core.NewRand(rc.Seed)
	g.snake = NewSnake(g.grid, g.cfg.Snake.StartLength, g.cfg.Snake.MinLength)
	g.levels = NewLevelManager(g.cfg)
	g.obstacles = NewObstacleManager(ObstacleParams{
		BlockMax:        g.cfg.Levels.ObstacleBlockMax,
		MinDistance:     g.cfg.Spawning.MinSpawnDistance,
		MoveStep:        g.cfg.Hazards.MovingStep,
		GateOn:          g.cfg.Hazards.GateOnTime,
		GateOff:         g.cfg.Hazards.GateOffTime,
		GateDefer:       g.cfg.Hazards.GateDefer,
		CrumbleLifetime: g.cfg.Hazards.CrumbleLifetime,
		BossCoreSize:    g.cfg.Boss.CoreSize,
	})
	g.spawner = NewSpawner(g.cfg, g.rng)
	g.effects = NewEffectManager(g.cfg.PowerUps)

	g.clock = 0
	g.accumulator = 0
	g.food = nil
	g.powerUp = nil
	g.score = 0
	g.streak = 0
	g.lastFoodAt = -1
	g.foodEaten = 0
	g.maxLength = g.snake.Len()
	g.powerUps = make(map[PowerUpKind]int)
	g.status = StatusRunning
	g.levelIntroOver = g.cfg.Levels.IntroDuration

	g.levelCfg = g.levels.Config()
	g.rebuildHazards()
	g.spawnFood()
	g.nextPowerUpAt = g.levelCfg.PowerUpInterval
}

// State reports the coarse game state to the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levels.Level(),
		GameOver: g.status == StatusEnded,
		Paused:   g.status == StatusPaused,
	}
}

// Summary returns the finished-run record.
func (g *Game) Summary() RunSummary {
	byKind := make(map[PowerUpKind]int, len(g.powerUps))
	for k, n := range g.powerUps {
		byKind[k] = n
	}
	return RunSummary{
		Score:     g.score,
		Level:     g.levels.Level(),
		MaxLength: g.maxLength,
		FoodEaten: g.foodEaten,
		PowerUps:  byKind,
		Duration:  g.clock,
		Seed:      g.runtime.Seed,
	}
}

// Step advances the simulation by one frame. dt is fixed at the runtime
// tick rate, so frame time never reads the wall clock.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	result := core.StepResult{}

	// Restart only takes effect from pause or game over, so a stray R
	// cannot throw away a live run. The restart frame does not advance
	// the fresh run.
	if input.Has(core.ActionRestart) && g.status != StatusRunning {
		g.Reset(g.runtime)
		result.State = g.State()
		return result
	}

	g.handleControl(input)
	if g.status != StatusRunning {
		result.State = g.State()
		return result
	}

	g.queueDirections(input)

	dt := 1.0 / float64(g.runtime.TickRate)
	g.clock += dt

	// World timers run even while the snake is frozen or between ticks.
	g.effects.Prune(g.clock)
	g.obstacles.Update(g.clock, dt, g.grid, g.snakeCells())
	g.clearBlockedItems()

	if g.updateLevel(&result.Events) {
		g.clearBlockedItems()
	}

	// The freeze effect halts the snake only. Drop accumulated time so
	// motion does not burst-replay when the freeze ends.
	if g.effects.FrozenAt(g.clock) {
		g.accumulator = 0
	} else {
		g.accumulator += dt
		interval := g.tickInterval()
		for g.accumulator >= interval && g.status == StatusRunning {
			g.accumulator -= interval
			g.tick(&result.Events)
			interval = g.tickInterval()
		}
	}

	if g.status == StatusRunning {
		if g.food == nil {
			g.spawnFood()
		}
		g.updatePowerUpSchedule()
	}

	result.State = g.State()
	return result
}

// Alpha returns the render interpolation fraction in [0,1): how far the
// current snake tick has progressed.
func (g *Game) Alpha() float64 {
	interval := g.tickInterval()
	if interval <= 0 {
		return 0
	}
	return core.ClampF(g.accumulator/interval, 0, 1)
}

func (g *Game) handleControl(input core.InputFrame) {
	if input.Has(core.ActionPause) {
		switch g.status {
		case StatusRunning:
			g.status = StatusPaused
		case StatusPaused:
			g.status = StatusRunning
		}
	}
}

func (g *Game) queueDirections(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.snake.QueueDirection(core.DirUp)
	case input.Has(core.ActionDown):
		g.snake.QueueDirection(core.DirDown)
	case input.Has(core.ActionLeft):
		g.snake.QueueDirection(core.DirLeft)
	case input.Has(core.ActionRight):
		g.snake.QueueDirection(core.DirRight)
	}
}

// tickInterval is the seconds per snake step at the current level and
// speed effect.
func (g *Game) tickInterval() float64 {
	rate := g.levelCfg.TickRate * g.effects.SpeedMultiplier(g.clock)
	if rate <= 0 {
		rate = g.cfg.Speed.BaseTickRate
	}
	return 1.0 / rate
}

// tick moves the snake one cell and resolves everything the head touches.
func (g *Game) tick(events *[]core.Event) {
	newHead := g.snake.Tick()

	fatal := !g.grid.InBounds(newHead) ||
		g.snake.WillCollideWithSelf(newHead) ||
		g.obstacles.Collides(newHead)
	if fatal {
		// A charged shield converts one death into a skipped tick: the
		// body rolls back to where it stood, growth included.
		if g.effects.ConsumeShield(g.clock) {
			g.snake.Rollback()
			*events = append(*events, core.EventShieldAbsorbed)
			return
		}
		g.status = StatusEnded
		*events = append(*events, core.EventDied)
		return
	}

	if g.food != nil && newHead == g.food.Pos {
		g.eatFood(events)
	}
	if g.powerUp != nil && newHead == g.powerUp.Pos {
		g.collectPowerUp(events)
	}

	if g.snake.Len() > g.maxLength {
		g.maxLength = g.snake.Len()
	}
}

func (g *Game) eatFood(events *[]core.Event) {
	sc := g.cfg.Scoring

	if g.lastFoodAt >= 0 && g.clock-g.lastFoodAt <= sc.StreakWindow {
		g.streak++
	} else {
		g.streak = 1
	}
	g.lastFoodAt = g.clock

	points := float64(sc.BaseFoodScore)
	points += float64(sc.StreakBonus * (g.streak - 1))
	if g.effects.Active(PowerUpSpeed, g.clock) {
		points += float64(sc.SpeedBonus)
	}
	g.score += int(points * g.levelCfg.ScoreMultiplier)

	g.snake.Grow(g.cfg.Spawning.FoodGrowth)
	g.foodEaten++
	g.food = nil
	*events = append(*events, core.EventFoodEaten)
}

func (g *Game) collectPowerUp(events *[]core.Event) {
	g.effects.Apply(*g.powerUp, g.clock, g.snake)
	g.powerUps[g.powerUp.Kind]++
	g.powerUp = nil
	*events = append(*events, core.EventPowerUpCollected)
}

// updateLevel recomputes the level from score and elapsed time. On a
// change, the hazard field is rebuilt from scratch and the intro banner
// timer restarts. Returns true if the level changed.
func (g *Game) updateLevel(events *[]core.Event) bool {
	if !g.levels.Update(g.score, g.clock) {
		return false
	}
	g.levelCfg = g.levels.Config()
	g.rebuildHazards()
	g.levelIntroOver = g.clock + g.cfg.Levels.IntroDuration
	*events = append(*events, core.EventLevelChanged)
	if g.levelCfg.Boss {
		*events = append(*events, core.EventBossLevel)
	}
	return true
}

func (g *Game) rebuildHazards() {
	g.obstacles.BuildForLevel(g.levelCfg, g.grid, g.snakeCells(), g.snake.Head(), g.rng, g.clock)
}

// clearBlockedItems despawns items a hazard has moved onto or that a
// rebuild buried. Food respawns on the same frame; a lost power-up waits
// for the schedule.
func (g *Game) clearBlockedItems() {
	if g.food != nil && g.obstacles.BlocksSpawn(g.food.Pos) {
		g.food = nil
	}
	if g.powerUp != nil && g.obstacles.BlocksSpawn(g.powerUp.Pos) {
		g.powerUp = nil
	}
}

func (g *Game) spawnFood() {
	taken := map[core.Position]bool{}
	if g.powerUp != nil {
		taken[g.powerUp.Pos] = true
	}
	if f, ok := g.spawner.SpawnFood(g.grid, g.snake, g.obstacles, taken); ok {
		g.food = &f
	}
}

// updatePowerUpSchedule spawns a power-up when the timer elapses and none
// is on the board. A successful spawn re-arms the full interval; a failed
// placement retries after a short delay instead of burning the interval.
func (g *Game) updatePowerUpSchedule() {
	if g.clock < g.nextPowerUpAt {
		return
	}
	if g.powerUp != nil {
		g.nextPowerUpAt = g.clock + g.levelCfg.PowerUpInterval
		return
	}

	taken := map[core.Position]bool{}
	if g.food != nil {
		taken[g.food.Pos] = true
	}
	pu, ok := g.spawner.SpawnPowerUp(g.grid, g.snake, g.obstacles, taken)
	if ok {
		g.powerUp = &pu
		g.nextPowerUpAt = g.clock + g.levelCfg.PowerUpInterval
	} else {
		g.nextPowerUpAt = g.clock + g.cfg.Spawning.RetryDelay
	}
}

func (g *Game) snakeCells() map[core.Position]bool {
	cells := make(map[core.Position]bool, g.snake.Len())
	for _, p := range g.snake.Body() {
		cells[p] = true
	}
	return cells
}
