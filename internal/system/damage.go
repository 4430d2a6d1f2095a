// internal/system/damage.go
package system

import (
	"errors"
	"math"

	"go-card-defense/internal/defs"
	"go-card-defense/internal/unit"
	"go-card-defense/pkg/geom"
)

// ErrInvalidMultiplier rejects negative damage multipliers.
var ErrInvalidMultiplier = errors.New("system: damage multiplier must not be negative")

// DamageStats accumulates per-enemy-kind damage telemetry.
type DamageStats struct {
	TotalDamage     int64
	EnemiesDestroyed int64
	DamageByType    map[defs.EnemyType]int64
}

// DamageService applies damage to enemies through a global multiplier and
// tracks destruction statistics. Destruction is reported only on the
// alive→dead transition.
type DamageService struct {
	multiplier float64
	stats      DamageStats
}

// NewDamageService builds a service with multiplier 1.
func NewDamageService() *DamageService {
	return &DamageService{
		multiplier: 1,
		stats:      DamageStats{DamageByType: make(map[defs.EnemyType]int64)},
	}
}

// Multiplier returns the global damage multiplier.
func (s *DamageService) Multiplier() float64 {
	return s.multiplier
}

// SetMultiplier replaces the global damage multiplier.
func (s *DamageService) SetMultiplier(m float64) error {
	if m < 0 {
		return ErrInvalidMultiplier
	}
	s.multiplier = m
	return nil
}

// Apply deals rawDamage scaled by the multiplier (rounded to the nearest
// integer) to the enemy. Dead enemies and non-positive raw damage are
// ignored. Returns whether this call destroyed the enemy.
func (s *DamageService) Apply(enemy *unit.Enemy, rawDamage int) bool {
	if enemy == nil || !enemy.IsAlive() || rawDamage <= 0 {
		return false
	}
	scaled := int(math.Round(float64(rawDamage) * s.multiplier))
	if scaled <= 0 {
		return false
	}
	destroyed := enemy.TakeDamage(scaled)
	s.stats.TotalDamage += int64(scaled)
	s.stats.DamageByType[enemy.Type()] += int64(scaled)
	if destroyed {
		s.stats.EnemiesDestroyed++
	}
	return destroyed
}

// ApplyArea deals damage to every alive enemy within radius (inclusive) of
// center and returns the enemies destroyed by this call.
func (s *DamageService) ApplyArea(enemies []*unit.Enemy, center geom.Point, radius float64, damage int) []*unit.Enemy {
	var destroyed []*unit.Enemy
	for _, e := range enemies {
		if !e.IsAlive() {
			continue
		}
		if center.DistanceTo(e.Position()) > radius {
			continue
		}
		if s.Apply(e, damage) {
			destroyed = append(destroyed, e)
		}
	}
	return destroyed
}

// RecommendTarget suggests an enemy worth hitting with attackDamage: any
// enemy killable in one hit wins (ties broken by highest attack power),
// otherwise the lowest-current-health enemy. Advisory only; core combat
// never depends on it.
func (s *DamageService) RecommendTarget(enemies []*unit.Enemy, attackDamage int) *unit.Enemy {
	scaled := int(math.Round(float64(attackDamage) * s.multiplier))
	var killable, weakest *unit.Enemy
	for _, e := range enemies {
		if !e.IsAlive() {
			continue
		}
		if weakest == nil || e.CurrentHealth() < weakest.CurrentHealth() {
			weakest = e
		}
		if scaled >= e.CurrentHealth() {
			if killable == nil || e.AttackPower() > killable.AttackPower() {
				killable = e
			}
		}
	}
	if killable != nil {
		return killable
	}
	return weakest
}

// Stats returns a copy of the accumulated telemetry.
func (s *DamageService) Stats() DamageStats {
	out := DamageStats{
		TotalDamage:      s.stats.TotalDamage,
		EnemiesDestroyed: s.stats.EnemiesDestroyed,
		DamageByType:     make(map[defs.EnemyType]int64, len(s.stats.DamageByType)),
	}
	for k, v := range s.stats.DamageByType {
		out.DamageByType[k] = v
	}
	return out
}
