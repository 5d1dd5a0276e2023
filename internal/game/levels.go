package game

import (
	"github.com/vovakirdan/advanced-snake/internal/config"
	"github.com/vovakirdan/advanced-snake/internal/core"
)

// LevelConfig is an immutable snapshot of the difficulty modifiers derived
// for one level. Recomputed whenever the level changes, never persisted.
type LevelConfig struct {
	Level           int
	TickRate        float64 // simulation ticks per second
	Obstacles       int     // static obstacle cell target
	PowerUpInterval float64 // seconds between power-up spawns
	ScoreMultiplier float64
	Moving          int
	Gates           int
	Crumble         int
	Boss            bool
}

// LevelManager tracks level progression. The level is a pure function of
// (score, elapsed time): whichever driver is ahead wins, and it only ever
// increases with more score or survival time.
type LevelManager struct {
	cfg   config.Config
	level int
}

// NewLevelManager creates a manager starting at level 1.
func NewLevelManager(cfg config.Config) *LevelManager {
	return &LevelManager{cfg: cfg, level: 1}
}

// Level returns the current level.
func (m *LevelManager) Level() int {
	return m.level
}

// Reset returns the manager to level 1 for a new run.
func (m *LevelManager) Reset() {
	m.level = 1
}

// ComputeLevel derives the level from score and elapsed seconds.
func (m *LevelManager) ComputeLevel(score int, elapsed float64) int {
	scoreLevel := 1 + score/m.cfg.Levels.ScorePerLevel
	timeLevel := 1 + int(elapsed/m.cfg.Levels.TimePerLevel)
	return core.Clamp(core.Max(scoreLevel, timeLevel), 1, m.cfg.Levels.MaxLevel)
}

// IsBossLevel returns true on every boss-interval level.
func (m *LevelManager) IsBossLevel(level int) bool {
	return m.cfg.Boss.EveryLevel > 0 && level%m.cfg.Boss.EveryLevel == 0
}

// Update recomputes the level and commits it. Returns true if it changed.
func (m *LevelManager) Update(score int, elapsed float64) bool {
	newLevel := m.ComputeLevel(score, elapsed)
	if newLevel != m.level {
		m.level = newLevel
		return true
	}
	return false
}

// hazardCount implements the shared stepped rule for the three hazard
// tiers: zero below the start level, then 1 + (level-start)/every,
// clamped to the tier maximum.
func hazardCount(level, start, every, max int) int {
	if level < start {
		return 0
	}
	steps := 1 + (level-start)/core.Max(1, every)
	return core.Clamp(steps, 0, max)
}

// Config derives the current level's difficulty snapshot in closed form.
func (m *LevelManager) Config() LevelConfig {
	cfg := m.cfg
	boss := m.IsBossLevel(m.level)

	tickRate := cfg.Speed.BaseTickRate + float64(m.level-1)*cfg.Speed.TickIncrement
	tickRate = core.ClampF(tickRate, 0, cfg.Speed.MaxTickRate)
	if boss {
		tickRate = core.ClampF(tickRate+cfg.Boss.TickBonus, 0, cfg.Speed.MaxTickRate)
	}

	obstacles := core.Max(0, cfg.Levels.BaseObstacles+(m.level-1)*cfg.Levels.ObstacleIncrement)
	if boss {
		obstacles += cfg.Boss.ObstacleBonus
	}

	interval := cfg.Spawning.PowerUpInterval - float64(m.level-1)*cfg.Spawning.IntervalDecrement
	if interval < cfg.Spawning.MinInterval {
		interval = cfg.Spawning.MinInterval
	}
	if boss {
		interval *= cfg.Boss.PowerUpIntervalMult
	}

	multiplier := 1.0 + float64(m.level-1)*cfg.Scoring.LevelMultiplier
	if boss {
		multiplier += cfg.Boss.ScoreMultiplierBonus
	}

	moving := hazardCount(m.level, cfg.Hazards.MovingStartLevel, cfg.Hazards.MovingEveryLevel, cfg.Hazards.MovingMax)
	gates := hazardCount(m.level, cfg.Hazards.GateStartLevel, cfg.Hazards.GateEveryLevel, cfg.Hazards.GateMax)
	crumble := hazardCount(m.level, cfg.Hazards.CrumbleStartLevel, cfg.Hazards.CrumbleEveryLevel, cfg.Hazards.CrumbleMax)

	if boss {
		moving += cfg.Boss.MovingBonus
		gates += cfg.Boss.GateBonus
		crumble += cfg.Boss.CrumbleBonus
	}

	return LevelConfig{
		Level:           m.level,
		TickRate:        tickRate,
		Obstacles:       obstacles,
		PowerUpInterval: interval,
		ScoreMultiplier: multiplier,
		Moving:          moving,
		Gates:           gates,
		Crumble:         crumble,
		Boss:            boss,
	}
}
