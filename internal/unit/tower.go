// internal/unit/tower.go
package unit

import (
	"go-card-defense/internal/defs"
	"go-card-defense/pkg/geom"
)

// AttackReport is the outcome of one tower update tick.
type AttackReport struct {
	Attacked bool
	Target   *Enemy
	Damage   int
}

// Tower is a stationary combat unit. Stats come from the fixed per-kind
// lookup table; only the cooldown clock and current target change after
// construction. Towers are never removed mid-session.
type Tower struct {
	id             string
	towerType      defs.TowerType
	position       geom.Point
	lastAttackTime int64
	target         *Enemy
}

// NewTower places a tower of the given kind.
func NewTower(id string, towerType defs.TowerType, position geom.Point) *Tower {
	return &Tower{id: id, towerType: towerType, position: position}
}

func (t *Tower) ID() string                { return t.id }
func (t *Tower) Type() defs.TowerType      { return t.towerType }
func (t *Tower) Position() geom.Point      { return t.position }
func (t *Tower) Stats() defs.TowerStats    { return t.towerType.Stats() }
func (t *Tower) LastAttackTime() int64     { return t.lastAttackTime }
func (t *Tower) CurrentTarget() *Enemy     { return t.target }

// CanAttack reports whether the attack cooldown has elapsed. Towers with no
// attack speed (support) never attack.
func (t *Tower) CanAttack(nowMillis int64) bool {
	stats := t.Stats()
	if stats.AttackSpeedMs <= 0 || stats.Damage <= 0 {
		return false
	}
	return nowMillis-t.lastAttackTime >= stats.AttackSpeedMs
}

// EnemiesInRange filters enemies to the alive ones within the tower's range.
func (t *Tower) EnemiesInRange(enemies []*Enemy) []*Enemy {
	var out []*Enemy
	rangePx := t.Stats().Range
	for _, e := range enemies {
		if !e.IsAlive() {
			continue
		}
		if t.position.DistanceTo(e.Position()) <= rangePx {
			out = append(out, e)
		}
	}
	return out
}

// SelectTarget picks the in-range enemy with the greatest path progress,
// the one closest to the base, not the one closest to the tower. Exact ties
// break on the lowest enemy id so selection is independent of slice order.
func (t *Tower) SelectTarget(enemies []*Enemy) *Enemy {
	var best *Enemy
	for _, e := range t.EnemiesInRange(enemies) {
		if best == nil {
			best = e
			continue
		}
		if e.PathProgress() > best.PathProgress() {
			best = e
		} else if e.PathProgress() == best.PathProgress() && e.ID() < best.ID() {
			best = e
		}
	}
	return best
}

// targetValid reports whether the current target is still attackable.
func (t *Tower) targetValid() bool {
	if t.target == nil || !t.target.IsAlive() {
		return false
	}
	return t.position.DistanceTo(t.target.Position()) <= t.Stats().Range
}

// Update re-selects the target if the current one is gone, dead, or out of
// range, then attacks when the cooldown has elapsed. The attack applies the
// tower's fixed damage directly and stamps the cooldown clock.
func (t *Tower) Update(enemies []*Enemy, nowMillis int64) AttackReport {
	if !t.targetValid() {
		t.target = t.SelectTarget(enemies)
	}
	if t.target == nil || !t.CanAttack(nowMillis) {
		return AttackReport{}
	}
	damage := t.Stats().Damage
	t.target.TakeDamage(damage)
	t.lastAttackTime = nowMillis
	return AttackReport{Attacked: true, Target: t.target, Damage: damage}
}
