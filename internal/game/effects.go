package game

import (
	"github.com/vovakirdan/advanced-snake/internal/config"
)

// EffectManager tracks the timed power-up effects on the snake. Each kind
// has at most one active instance; collecting a duplicate extends it from
// now rather than stacking. All timing reads the simulation's game clock.
type EffectManager struct {
	cfg config.PowerUpsConfig

	expiry map[PowerUpKind]float64 // game-clock second the effect ends

	// The shield carries a single charge. The charge is consumed by the
	// first absorbed collision and is gone when the effect expires, even
	// if never used.
	shieldCharged bool
}

// NewEffectManager creates a manager with no active effects.
func NewEffectManager(cfg config.PowerUpsConfig) *EffectManager {
	return &EffectManager{
		cfg:    cfg,
		expiry: make(map[PowerUpKind]float64),
	}
}

// Reset clears all effects for a new run.
func (e *EffectManager) Reset() {
	e.expiry = make(map[PowerUpKind]float64)
	e.shieldCharged = false
}

// Apply activates a collected power-up. Shrink acts instantly on the snake
// and returns the number of segments removed, leaving a timed indicator
// running; the other kinds start or refresh their timers.
func (e *EffectManager) Apply(pu PowerUp, now float64, snake *Snake) int {
	switch pu.Kind {
	case PowerUpShrink:
		e.expiry[pu.Kind] = now + pu.Duration
		return snake.Shrink(e.cfg.ShrinkSegments)
	case PowerUpShield:
		e.expiry[pu.Kind] = now + pu.Duration
		e.shieldCharged = true
		return 0
	default:
		e.expiry[pu.Kind] = now + pu.Duration
		return 0
	}
}

// Prune drops expired effects. An expired shield takes its unused charge
// with it.
func (e *EffectManager) Prune(now float64) {
	for kind, end := range e.expiry {
		if end <= now {
			delete(e.expiry, kind)
			if kind == PowerUpShield {
				e.shieldCharged = false
			}
		}
	}
}

// Active returns true if the effect is running at the given time.
func (e *EffectManager) Active(kind PowerUpKind, now float64) bool {
	end, ok := e.expiry[kind]
	return ok && now < end
}

// Remaining returns the seconds left on an effect, zero when inactive.
func (e *EffectManager) Remaining(kind PowerUpKind, now float64) float64 {
	end, ok := e.expiry[kind]
	if !ok || end <= now {
		return 0
	}
	return end - now
}

// SpeedMultiplier returns the tick-rate multiplier, 1.0 when no speed
// boost is running.
func (e *EffectManager) SpeedMultiplier(now float64) float64 {
	if e.Active(PowerUpSpeed, now) {
		return e.cfg.SpeedMultiplier
	}
	return 1.0
}

// FrozenAt returns true while a freeze effect halts snake movement. The
// rest of the world keeps ticking.
func (e *EffectManager) FrozenAt(now float64) bool {
	return e.Active(PowerUpFreeze, now)
}

// ShieldReady returns true if a charged shield can absorb a collision.
func (e *EffectManager) ShieldReady(now float64) bool {
	return e.shieldCharged && e.Active(PowerUpShield, now)
}

// ConsumeShield spends the shield charge on an absorbed collision.
// Returns false if no charge was available. The effect ends with the
// charge, so the indicator disappears on the absorbing tick.
func (e *EffectManager) ConsumeShield(now float64) bool {
	if !e.ShieldReady(now) {
		return false
	}
	e.shieldCharged = false
	delete(e.expiry, PowerUpShield)
	return true
}

// ActiveKinds returns the running effects in a stable order for rendering.
func (e *EffectManager) ActiveKinds(now float64) []PowerUpKind {
	kinds := make([]PowerUpKind, 0, len(e.expiry))
	for _, k := range []PowerUpKind{PowerUpSpeed, PowerUpShrink, PowerUpFreeze, PowerUpShield} {
		if e.Active(k, now) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
