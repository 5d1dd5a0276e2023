package game

import (
	"testing"

	"github.com/vovakirdan/advanced-snake/internal/config"
)

func newEffects() *EffectManager {
	return NewEffectManager(config.Default().PowerUps)
}

func TestSpeedEffectMultiplier(t *testing.T) {
	e := newEffects()
	cfg := config.Default().PowerUps

	if e.SpeedMultiplier(0) != 1.0 {
		t.Fatal("multiplier should be 1.0 with no effect")
	}

	e.Apply(PowerUp{Kind: PowerUpSpeed, Duration: cfg.SpeedDuration}, 10, nil)
	if e.SpeedMultiplier(11) != cfg.SpeedMultiplier {
		t.Errorf("expected multiplier %g while boosted", cfg.SpeedMultiplier)
	}
	if e.SpeedMultiplier(10 + cfg.SpeedDuration) != 1.0 {
		t.Error("multiplier should drop back at expiry")
	}
}

func TestShrinkActsInstantlyWithTimedIndicator(t *testing.T) {
	e := newEffects()
	snake := NewSnake(testGrid(), 8, 3)

	removed := e.Apply(PowerUp{Kind: PowerUpShrink, Duration: 5}, 0, snake)
	if removed != config.Default().PowerUps.ShrinkSegments {
		t.Errorf("expected %d segments removed, got %d", config.Default().PowerUps.ShrinkSegments, removed)
	}
	// The segments are gone on pickup; the indicator keeps running for
	// its duration.
	if !e.Active(PowerUpShrink, 0.1) {
		t.Error("shrink should leave its indicator running")
	}
	if e.Active(PowerUpShrink, 5) {
		t.Error("shrink indicator should end at its duration")
	}
}

func TestShieldAbsorbsExactlyOnce(t *testing.T) {
	e := newEffects()

	e.Apply(PowerUp{Kind: PowerUpShield, Duration: 8}, 0, nil)
	if !e.ShieldReady(1) {
		t.Fatal("shield should be charged after pickup")
	}

	if !e.ConsumeShield(1) {
		t.Fatal("first collision should be absorbed")
	}
	if e.ConsumeShield(2) {
		t.Fatal("second collision must not be absorbed")
	}
	if e.ShieldReady(2) {
		t.Error("spent shield should not report ready")
	}
	// The indicator ends with the charge.
	if e.Active(PowerUpShield, 2) {
		t.Error("spent shield should not show as active")
	}
}

func TestShieldChargeDiesWithEffect(t *testing.T) {
	e := newEffects()

	e.Apply(PowerUp{Kind: PowerUpShield, Duration: 8}, 0, nil)
	e.Prune(9) // past expiry, charge never used

	if e.ConsumeShield(9) {
		t.Fatal("expired shield must not absorb")
	}
}

func TestDuplicatePickupExtendsNotStacks(t *testing.T) {
	e := newEffects()

	e.Apply(PowerUp{Kind: PowerUpFreeze, Duration: 4}, 0, nil)
	e.Apply(PowerUp{Kind: PowerUpFreeze, Duration: 4}, 3, nil)

	if !e.Active(PowerUpFreeze, 6) {
		t.Error("second pickup should extend the effect to t=7")
	}
	if e.Active(PowerUpFreeze, 7) {
		t.Error("effect should end at the refreshed expiry, not later")
	}
}

func TestPruneDropsExpiredEffects(t *testing.T) {
	e := newEffects()

	e.Apply(PowerUp{Kind: PowerUpSpeed, Duration: 6}, 0, nil)
	e.Apply(PowerUp{Kind: PowerUpFreeze, Duration: 4}, 0, nil)
	e.Prune(5)

	if e.Active(PowerUpFreeze, 5) {
		t.Error("freeze should be pruned")
	}
	if !e.Active(PowerUpSpeed, 5) {
		t.Error("speed should survive the prune")
	}
}

func TestRemainingReportsSecondsLeft(t *testing.T) {
	e := newEffects()

	e.Apply(PowerUp{Kind: PowerUpSpeed, Duration: 6}, 2, nil)
	if got := e.Remaining(PowerUpSpeed, 5); got != 3 {
		t.Errorf("expected 3s remaining, got %g", got)
	}
	if got := e.Remaining(PowerUpShield, 5); got != 0 {
		t.Errorf("inactive effect should report 0, got %g", got)
	}
}
