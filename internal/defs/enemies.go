// internal/defs/enemies.go
package defs

import "fmt"

// EnemyType is the closed set of enemy kinds. Stats are fixed per type at
// spawn; difficulty scaling happens outside the simulation core.
type EnemyType int

const (
	EnemyBasic EnemyType = iota
	EnemyFast
	EnemyRanged
	EnemyEnhanced
	EnemyBoss
)

// EnemyTypes lists every enemy kind, for iteration and exhaustiveness tests.
var EnemyTypes = []EnemyType{EnemyBasic, EnemyFast, EnemyRanged, EnemyEnhanced, EnemyBoss}

// EnemyStats is the fixed stat block of an enemy kind.
type EnemyStats struct {
	Name        string
	Health      int
	AttackPower int
	Speed       float64 // pixels per second along the path
	Tier        ScoreTier
}

// Stats returns the stat block for the enemy kind.
func (t EnemyType) Stats() EnemyStats {
	switch t {
	case EnemyBasic:
		return EnemyStats{Name: "Basic", Health: 100, AttackPower: 10, Speed: 80, Tier: TierNormal}
	case EnemyFast:
		return EnemyStats{Name: "Fast", Health: 60, AttackPower: 5, Speed: 140, Tier: TierNormal}
	case EnemyRanged:
		return EnemyStats{Name: "Ranged", Health: 80, AttackPower: 15, Speed: 70, Tier: TierNormal}
	case EnemyEnhanced:
		return EnemyStats{Name: "Enhanced", Health: 220, AttackPower: 20, Speed: 90, Tier: TierElite}
	case EnemyBoss:
		return EnemyStats{Name: "Boss", Health: 800, AttackPower: 40, Speed: 50, Tier: TierBoss}
	default:
		panic(fmt.Sprintf("defs: unknown enemy type %d", int(t)))
	}
}

func (t EnemyType) String() string {
	return t.Stats().Name
}
