package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.advsnake/configs/snake.yaml ->
// ./configs/snake.yaml -> embedded default.
// The result is always validated; a config that would divide by zero or
// hang placement retries is rejected here rather than at play time.
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	var cfg Config

	// Custom path is authoritative: failure to read it is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory.
	if userPath := userConfigPath("snake.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory.
	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML.
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".advsnake", "configs", filename)
}

// Validate rejects configurations that would break the simulation.
// Gameplay outcomes are never errors, but a degenerate config is.
func (c Config) Validate() error {
	if c.Grid.Width < 8 || c.Grid.Height < 8 {
		return fmt.Errorf("config: grid must be at least 8x8, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Snake.MinLength < 1 {
		return fmt.Errorf("config: snake min_length must be positive, got %d", c.Snake.MinLength)
	}
	if c.Snake.StartLength < c.Snake.MinLength {
		return fmt.Errorf("config: snake start_length %d below min_length %d", c.Snake.StartLength, c.Snake.MinLength)
	}
	if c.Snake.StartLength > c.Grid.Width/2 {
		return fmt.Errorf("config: snake start_length %d does not fit grid width %d", c.Snake.StartLength, c.Grid.Width)
	}
	if c.Speed.BaseTickRate <= 0 {
		return fmt.Errorf("config: base_tick_rate must be positive, got %g", c.Speed.BaseTickRate)
	}
	if c.Speed.MaxTickRate < c.Speed.BaseTickRate {
		return fmt.Errorf("config: max_tick_rate %g below base_tick_rate %g", c.Speed.MaxTickRate, c.Speed.BaseTickRate)
	}
	if c.Levels.ScorePerLevel <= 0 {
		return fmt.Errorf("config: score_per_level must be positive, got %d", c.Levels.ScorePerLevel)
	}
	if c.Levels.TimePerLevel <= 0 {
		return fmt.Errorf("config: time_per_level must be positive, got %g", c.Levels.TimePerLevel)
	}
	if c.Levels.MaxLevel < 1 {
		return fmt.Errorf("config: max_level must be at least 1, got %d", c.Levels.MaxLevel)
	}
	if c.Levels.BaseObstacles < 0 || c.Levels.ObstacleIncrement < 0 {
		return fmt.Errorf("config: obstacle counts must not be negative")
	}
	if c.Levels.ObstacleBlockMax < 1 {
		return fmt.Errorf("config: obstacle_block_max must be at least 1, got %d", c.Levels.ObstacleBlockMax)
	}
	if c.Spawning.MinSpawnDistance < 0 {
		return fmt.Errorf("config: min_spawn_distance must not be negative, got %d", c.Spawning.MinSpawnDistance)
	}
	if c.Spawning.PowerUpInterval <= 0 || c.Spawning.MinInterval <= 0 {
		return fmt.Errorf("config: power-up intervals must be positive")
	}
	if c.Spawning.RetryDelay <= 0 {
		return fmt.Errorf("config: powerup_retry_delay must be positive, got %g", c.Spawning.RetryDelay)
	}
	if c.PowerUps.SpeedWeight < 0 || c.PowerUps.ShrinkWeight < 0 ||
		c.PowerUps.FreezeWeight < 0 || c.PowerUps.ShieldWeight < 0 {
		return fmt.Errorf("config: power-up weights must not be negative")
	}
	if c.PowerUps.SpeedMultiplier <= 0 {
		return fmt.Errorf("config: speed_multiplier must be positive, got %g", c.PowerUps.SpeedMultiplier)
	}
	if c.Hazards.MovingStep <= 0 {
		return fmt.Errorf("config: moving_step must be positive, got %g", c.Hazards.MovingStep)
	}
	if c.Hazards.MovingEveryLevel < 1 || c.Hazards.GateEveryLevel < 1 || c.Hazards.CrumbleEveryLevel < 1 {
		return fmt.Errorf("config: hazard every_level values must be at least 1")
	}
	if c.Hazards.GateOnTime <= 0 || c.Hazards.GateOffTime <= 0 || c.Hazards.GateDefer <= 0 {
		return fmt.Errorf("config: gate durations must be positive")
	}
	if c.Hazards.CrumbleLifetime <= 0 {
		return fmt.Errorf("config: crumble_lifetime must be positive, got %g", c.Hazards.CrumbleLifetime)
	}
	if c.Boss.EveryLevel < 0 {
		return fmt.Errorf("config: boss every_level must not be negative, got %d", c.Boss.EveryLevel)
	}
	if c.Boss.EveryLevel > 0 && c.Boss.CoreSize < 1 {
		return fmt.Errorf("config: boss core_size must be at least 1, got %d", c.Boss.CoreSize)
	}
	return nil
}
