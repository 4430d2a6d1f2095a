// internal/defs/types.go
package defs

// ScoreTier groups enemy kinds by the points a defeat awards.
type ScoreTier int

const (
	TierNormal ScoreTier = iota
	TierElite
	TierBoss
)

// Points returns the score awarded for defeating an enemy of this tier.
func (t ScoreTier) Points() int {
	switch t {
	case TierNormal:
		return 10
	case TierElite:
		return 30
	case TierBoss:
		return 100
	default:
		return 0
	}
}

func (t ScoreTier) String() string {
	switch t {
	case TierNormal:
		return "normal"
	case TierElite:
		return "elite"
	case TierBoss:
		return "boss"
	default:
		return "unknown"
	}
}
