package game

import (
	"testing"

	"github.com/vovakirdan/advanced-snake/internal/config"
)

func TestComputeLevelTakesMaxDriver(t *testing.T) {
	cfg := config.Default()
	m := NewLevelManager(cfg)

	// Score driver ahead: 240 points = level 3, 50s survived = level 2.
	if got := m.ComputeLevel(240, 50); got != 3 {
		t.Errorf("expected level 3 from score driver, got %d", got)
	}
	// Time driver ahead.
	if got := m.ComputeLevel(30, 100); got != 3 {
		t.Errorf("expected level 3 from time driver, got %d", got)
	}
	// Fresh run.
	if got := m.ComputeLevel(0, 0); got != 1 {
		t.Errorf("expected level 1 at start, got %d", got)
	}
}

func TestComputeLevelClampsAtMax(t *testing.T) {
	cfg := config.Default()
	m := NewLevelManager(cfg)

	if got := m.ComputeLevel(1000000, 100000); got != cfg.Levels.MaxLevel {
		t.Errorf("expected clamp at %d, got %d", cfg.Levels.MaxLevel, got)
	}
}

func TestLevelNeverDecreases(t *testing.T) {
	m := NewLevelManager(config.Default())

	m.Update(240, 50)
	if m.Level() != 3 {
		t.Fatalf("expected level 3, got %d", m.Level())
	}
	// More score and time can only push the level up.
	for score := 240; score <= 600; score += 60 {
		prev := m.Level()
		m.Update(score, 60)
		if m.Level() < prev {
			t.Fatalf("level decreased from %d to %d", prev, m.Level())
		}
	}
}

func TestBossLevelCadence(t *testing.T) {
	m := NewLevelManager(config.Default())

	for _, tc := range []struct {
		level int
		boss  bool
	}{
		{4, false}, {5, true}, {6, false}, {9, false}, {10, true},
	} {
		if got := m.IsBossLevel(tc.level); got != tc.boss {
			t.Errorf("level %d: boss = %v, want %v", tc.level, got, tc.boss)
		}
	}
}

func TestBossDisabledWhenIntervalZero(t *testing.T) {
	cfg := config.Default()
	cfg.Boss.EveryLevel = 0
	m := NewLevelManager(cfg)

	for level := 1; level <= 20; level++ {
		if m.IsBossLevel(level) {
			t.Fatalf("level %d flagged boss with cadence disabled", level)
		}
	}
}

func TestHazardCountSteps(t *testing.T) {
	// start 3, every 2, max 6
	for _, tc := range []struct {
		level, want int
	}{
		{1, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}, {7, 3}, {13, 6}, {50, 6},
	} {
		if got := hazardCount(tc.level, 3, 2, 6); got != tc.want {
			t.Errorf("hazardCount(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestLevelConfigSpeedClamped(t *testing.T) {
	cfg := config.Default()
	m := NewLevelManager(cfg)
	m.Update(1000000, 0) // jump to max level

	lc := m.Config()
	if lc.TickRate > cfg.Speed.MaxTickRate {
		t.Errorf("tick rate %g exceeds max %g", lc.TickRate, cfg.Speed.MaxTickRate)
	}
	if lc.PowerUpInterval < cfg.Spawning.MinInterval {
		t.Errorf("power-up interval %g below floor %g", lc.PowerUpInterval, cfg.Spawning.MinInterval)
	}
}

func TestLevelConfigBossBonuses(t *testing.T) {
	cfg := config.Default()
	m := NewLevelManager(cfg)

	m.Update(cfg.Levels.ScorePerLevel*4, 0) // level 5, boss
	boss := m.Config()
	if !boss.Boss {
		t.Fatal("level 5 should be a boss level")
	}

	m2 := NewLevelManager(cfg)
	m2.Update(cfg.Levels.ScorePerLevel*3, 0) // level 4
	plain := m2.Config()

	if boss.Obstacles <= plain.Obstacles {
		t.Errorf("boss obstacles %d should exceed level 4's %d", boss.Obstacles, plain.Obstacles)
	}
	if boss.ScoreMultiplier <= plain.ScoreMultiplier {
		t.Errorf("boss multiplier %g should exceed level 4's %g", boss.ScoreMultiplier, plain.ScoreMultiplier)
	}
	if boss.Moving <= plain.Moving {
		t.Errorf("boss movers %d should exceed level 4's %d", boss.Moving, plain.Moving)
	}
}
