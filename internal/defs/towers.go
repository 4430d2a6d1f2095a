// internal/defs/towers.go
package defs

import "fmt"

// TowerType is the closed set of tower kinds a card can build. Stats are a
// fixed lookup per kind, never mutated per instance.
type TowerType int

const (
	TowerArcher TowerType = iota
	TowerCannon
	TowerMagic
	TowerIce
	TowerFire
	TowerLightning
	TowerPoison
	TowerSupport
)

// TowerTypes lists every tower kind, for iteration and exhaustiveness tests.
var TowerTypes = []TowerType{
	TowerArcher, TowerCannon, TowerMagic, TowerIce,
	TowerFire, TowerLightning, TowerPoison, TowerSupport,
}

// TowerStats is the fixed stat block of a tower kind. SplashRadius of zero
// means single-target; AttackSpeedMs of zero means the tower never attacks.
type TowerStats struct {
	Name          string
	Damage        int
	Range         float64 // pixels, Euclidean
	AttackSpeedMs int64   // cooldown between attacks
	Cost          int     // mana
	SplashRadius  float64 // pixels, area damage around the struck enemy
}

// Stats returns the stat block for the tower kind.
func (t TowerType) Stats() TowerStats {
	switch t {
	case TowerArcher:
		return TowerStats{Name: "ARCHER", Damage: 15, Range: 140, AttackSpeedMs: 800, Cost: 2}
	case TowerCannon:
		return TowerStats{Name: "CANNON", Damage: 40, Range: 110, AttackSpeedMs: 1800, Cost: 4, SplashRadius: 60}
	case TowerMagic:
		return TowerStats{Name: "MAGIC", Damage: 25, Range: 130, AttackSpeedMs: 1200, Cost: 3}
	case TowerIce:
		return TowerStats{Name: "ICE", Damage: 10, Range: 120, AttackSpeedMs: 1000, Cost: 3}
	case TowerFire:
		return TowerStats{Name: "FIRE", Damage: 30, Range: 100, AttackSpeedMs: 1500, Cost: 4, SplashRadius: 45}
	case TowerLightning:
		return TowerStats{Name: "LIGHTNING", Damage: 50, Range: 160, AttackSpeedMs: 2200, Cost: 5}
	case TowerPoison:
		return TowerStats{Name: "POISON", Damage: 12, Range: 125, AttackSpeedMs: 900, Cost: 3}
	case TowerSupport:
		return TowerStats{Name: "SUPPORT", Damage: 0, Range: 150, AttackSpeedMs: 0, Cost: 2}
	default:
		panic(fmt.Sprintf("defs: unknown tower type %d", int(t)))
	}
}

func (t TowerType) String() string {
	return t.Stats().Name
}

// ParseTowerType resolves a catalog label like "ARCHER" back to its kind.
func ParseTowerType(name string) (TowerType, error) {
	for _, tt := range TowerTypes {
		if tt.Stats().Name == name {
			return tt, nil
		}
	}
	return 0, fmt.Errorf("defs: unknown tower type %q", name)
}

// MarshalText lets tower kinds appear as their catalog labels in JSON.
func (t TowerType) MarshalText() ([]byte, error) {
	return []byte(t.Stats().Name), nil
}

// UnmarshalText parses a catalog label.
func (t *TowerType) UnmarshalText(text []byte) error {
	parsed, err := ParseTowerType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
