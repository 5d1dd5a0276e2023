// Package config provides YAML-based game configuration loading and
// validation. One immutable Config is built at startup and passed by value
// into every simulation component; there are no mutable globals.
package config

// Config contains every tunable for the snake simulation.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Snake    SnakeConfig    `yaml:"snake"`
	Speed    SpeedConfig    `yaml:"speed"`
	Levels   LevelsConfig   `yaml:"levels"`
	Spawning SpawnConfig    `yaml:"spawning"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
	Hazards  HazardsConfig  `yaml:"hazards"`
	Boss     BossConfig     `yaml:"boss"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines the snake's initial shape.
type SnakeConfig struct {
	StartLength int `yaml:"start_length"`
	MinLength   int `yaml:"min_length"`
}

// SpeedConfig defines the tick-rate curve (simulation ticks per second).
type SpeedConfig struct {
	BaseTickRate  float64 `yaml:"base_tick_rate"` // ticks/sec at level 1
	TickIncrement float64 `yaml:"tick_increment"` // added per level
	MaxTickRate   float64 `yaml:"max_tick_rate"`
}

// LevelsConfig defines the level-progression formula and static obstacles.
type LevelsConfig struct {
	ScorePerLevel     int     `yaml:"score_per_level"`
	TimePerLevel      float64 `yaml:"time_per_level"` // seconds survived per level
	MaxLevel          int     `yaml:"max_level"`
	IntroDuration     float64 `yaml:"intro_duration"` // level banner, seconds
	BaseObstacles     int     `yaml:"base_obstacles"`
	ObstacleIncrement int     `yaml:"obstacle_increment"`
	ObstacleBlockMax  int     `yaml:"obstacle_block_max"` // max cluster size
}

// SpawnConfig defines food and power-up placement rules.
type SpawnConfig struct {
	MinSpawnDistance  int     `yaml:"min_spawn_distance"` // Manhattan, from head
	FoodGrowth        int     `yaml:"food_growth"`
	PowerUpInterval   float64 `yaml:"powerup_interval"` // seconds, at level 1
	IntervalDecrement float64 `yaml:"powerup_interval_decrement"`
	MinInterval       float64 `yaml:"min_powerup_interval"`
	RetryDelay        float64 `yaml:"powerup_retry_delay"` // after failed spawn
}

// ScoringConfig defines the score formula.
type ScoringConfig struct {
	BaseFoodScore   int     `yaml:"base_food_score"`
	StreakWindow    float64 `yaml:"streak_window"` // seconds
	StreakBonus     int     `yaml:"streak_bonus"`  // per streak count after first
	LevelMultiplier float64 `yaml:"level_multiplier"`
	SpeedBonus      int     `yaml:"speed_bonus"` // extra per food under speed boost
}

// PowerUpsConfig defines per-kind weights and durations.
type PowerUpsConfig struct {
	SpeedWeight  int `yaml:"speed_weight"`
	ShrinkWeight int `yaml:"shrink_weight"`
	FreezeWeight int `yaml:"freeze_weight"`
	ShieldWeight int `yaml:"shield_weight"`

	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	SpeedDuration   float64 `yaml:"speed_duration"`
	ShrinkDuration  float64 `yaml:"shrink_duration"`
	ShrinkSegments  int     `yaml:"shrink_segments"`
	FreezeDuration  float64 `yaml:"freeze_duration"`
	ShieldDuration  float64 `yaml:"shield_duration"`
}

// HazardsConfig defines the three stepped hazard tiers.
type HazardsConfig struct {
	MovingStartLevel int     `yaml:"moving_start_level"`
	MovingEveryLevel int     `yaml:"moving_every_level"`
	MovingMax        int     `yaml:"moving_max"`
	MovingStep       float64 `yaml:"moving_step"` // seconds between mover steps

	GateStartLevel int     `yaml:"gate_start_level"`
	GateEveryLevel int     `yaml:"gate_every_level"`
	GateMax        int     `yaml:"gate_max"`
	GateOnTime     float64 `yaml:"gate_on_duration"`
	GateOffTime    float64 `yaml:"gate_off_duration"`
	GateDefer      float64 `yaml:"gate_defer"` // retry delay when snake sits on gate

	CrumbleStartLevel int     `yaml:"crumble_start_level"`
	CrumbleEveryLevel int     `yaml:"crumble_every_level"`
	CrumbleMax        int     `yaml:"crumble_max"`
	CrumbleLifetime   float64 `yaml:"crumble_lifetime"`
}

// BossConfig defines boss-level cadence and bonuses.
type BossConfig struct {
	EveryLevel           int     `yaml:"every_level"` // 0 disables boss levels
	CoreSize             int     `yaml:"core_size"`
	TickBonus            float64 `yaml:"tick_bonus"`
	ObstacleBonus        int     `yaml:"obstacle_bonus"`
	ScoreMultiplierBonus float64 `yaml:"score_multiplier_bonus"`
	PowerUpIntervalMult  float64 `yaml:"powerup_interval_mult"`
	MovingBonus          int     `yaml:"moving_bonus"`
	GateBonus            int     `yaml:"gate_bonus"`
	CrumbleBonus         int     `yaml:"crumble_bonus"`
}
