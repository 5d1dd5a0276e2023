package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults failed: %v", err)
	}
	if cfg.Grid.Width < 8 || cfg.Grid.Height < 8 {
		t.Errorf("suspicious grid size %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Speed.BaseTickRate <= 0 {
		t.Error("base tick rate should be positive")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := `
grid: {width: 40, height: 24}
snake: {start_length: 5, min_length: 3}
speed: {base_tick_rate: 10, tick_increment: 0.5, max_tick_rate: 20}
levels: {score_per_level: 100, time_per_level: 30, max_level: 8, intro_duration: 1, base_obstacles: 4, obstacle_increment: 1, obstacle_block_max: 2}
spawning: {min_spawn_distance: 3, food_growth: 1, powerup_interval: 8, powerup_interval_decrement: 0.3, min_powerup_interval: 3, powerup_retry_delay: 1}
scoring: {base_food_score: 10, streak_window: 3, streak_bonus: 4, level_multiplier: 0.1, speed_bonus: 3}
powerups: {speed_weight: 1, shrink_weight: 1, freeze_weight: 1, shield_weight: 1, speed_multiplier: 1.5, speed_duration: 5, shrink_duration: 5, shrink_segments: 2, freeze_duration: 4, shield_duration: 8}
hazards: {moving_start_level: 3, moving_every_level: 2, moving_max: 4, moving_step: 0.4, gate_start_level: 4, gate_every_level: 3, gate_max: 4, gate_on_duration: 2, gate_off_duration: 2, gate_defer: 0.2, crumble_start_level: 5, crumble_every_level: 2, crumble_max: 6, crumble_lifetime: 6}
boss: {every_level: 5, core_size: 3, tick_bonus: 1.5, obstacle_bonus: 4, score_multiplier_bonus: 0.3, powerup_interval_mult: 1.3, moving_bonus: 1, gate_bonus: 1, crumble_bonus: 2}
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading custom config failed: %v", err)
	}
	if cfg.Grid.Width != 40 {
		t.Errorf("expected grid width 40, got %d", cfg.Grid.Width)
	}
	if cfg.Levels.MaxLevel != 8 {
		t.Errorf("expected max level 8, got %d", cfg.Levels.MaxLevel)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("missing explicit config should be an error")
	}
	if !strings.Contains(err.Error(), "config:") {
		t.Errorf("error should carry the config prefix: %v", err)
	}
}

func TestValidateRejectsDegenerateConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.Grid.Width = 4 }},
		{"zero min length", func(c *Config) { c.Snake.MinLength = 0 }},
		{"start below min", func(c *Config) { c.Snake.StartLength = 1; c.Snake.MinLength = 3 }},
		{"zero tick rate", func(c *Config) { c.Speed.BaseTickRate = 0 }},
		{"max below base", func(c *Config) { c.Speed.MaxTickRate = c.Speed.BaseTickRate - 1 }},
		{"zero score per level", func(c *Config) { c.Levels.ScorePerLevel = 0 }},
		{"negative weight", func(c *Config) { c.PowerUps.ShieldWeight = -1 }},
		{"zero mover step", func(c *Config) { c.Hazards.MovingStep = 0 }},
		{"zero gate on time", func(c *Config) { c.Hazards.GateOnTime = 0 }},
		{"boss without core", func(c *Config) { c.Boss.CoreSize = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
