package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
		},
		Snake: SnakeConfig{
			StartLength: 4,
			MinLength:   3,
		},
		Speed: SpeedConfig{
			BaseTickRate:  8.0,
			TickIncrement: 0.7,
			MaxTickRate:   18.0,
		},
		Levels: LevelsConfig{
			ScorePerLevel:     120,
			TimePerLevel:      45.0,
			MaxLevel:          12,
			IntroDuration:     1.5,
			BaseObstacles:     6,
			ObstacleIncrement: 2,
			ObstacleBlockMax:  3,
		},
		Spawning: SpawnConfig{
			MinSpawnDistance:  4,
			FoodGrowth:        1,
			PowerUpInterval:   9.0,
			IntervalDecrement: 0.4,
			MinInterval:       3.5,
			RetryDelay:        1.0,
		},
		Scoring: ScoringConfig{
			BaseFoodScore:   10,
			StreakWindow:    3.0,
			StreakBonus:     4,
			LevelMultiplier: 0.12,
			SpeedBonus:      3,
		},
		PowerUps: PowerUpsConfig{
			SpeedWeight:     3,
			ShrinkWeight:    2,
			FreezeWeight:    2,
			ShieldWeight:    1,
			SpeedMultiplier: 1.6,
			SpeedDuration:   6.0,
			ShrinkDuration:  5.0,
			ShrinkSegments:  3,
			FreezeDuration:  4.0,
			ShieldDuration:  8.0,
		},
		Hazards: HazardsConfig{
			MovingStartLevel:  3,
			MovingEveryLevel:  2,
			MovingMax:         6,
			MovingStep:        0.35,
			GateStartLevel:    4,
			GateEveryLevel:    3,
			GateMax:           6,
			GateOnTime:        2.4,
			GateOffTime:       2.0,
			GateDefer:         0.2,
			CrumbleStartLevel: 5,
			CrumbleEveryLevel: 2,
			CrumbleMax:        10,
			CrumbleLifetime:   7.0,
		},
		Boss: BossConfig{
			EveryLevel:           5,
			CoreSize:             3,
			TickBonus:            2.0,
			ObstacleBonus:        5,
			ScoreMultiplierBonus: 0.35,
			PowerUpIntervalMult:  1.4,
			MovingBonus:          2,
			GateBonus:            2,
			CrumbleBonus:         3,
		},
	}
}
