// internal/defs/waves.go
package defs

// SpawnWeight is one entry of a wave's fixed enemy-type distribution.
type SpawnWeight struct {
	Type   EnemyType
	Weight int
}

// WaveDefinition describes one wave of enemies: how many spawn, how quickly,
// and the weighted distribution of kinds they are drawn from.
type WaveDefinition struct {
	Number          int
	Count           int
	SpawnIntervalMs int64
	Distribution    []SpawnWeight
}

// DefaultWaves is the built-in wave sequence. Past the last entry the final
// wave repeats.
var DefaultWaves = []WaveDefinition{
	{Number: 1, Count: 5, SpawnIntervalMs: 1600, Distribution: []SpawnWeight{
		{Type: EnemyBasic, Weight: 1},
	}},
	{Number: 2, Count: 7, SpawnIntervalMs: 1400, Distribution: []SpawnWeight{
		{Type: EnemyBasic, Weight: 3}, {Type: EnemyFast, Weight: 1},
	}},
	{Number: 3, Count: 9, SpawnIntervalMs: 1200, Distribution: []SpawnWeight{
		{Type: EnemyBasic, Weight: 2}, {Type: EnemyFast, Weight: 2},
	}},
	{Number: 4, Count: 10, SpawnIntervalMs: 1100, Distribution: []SpawnWeight{
		{Type: EnemyBasic, Weight: 2}, {Type: EnemyFast, Weight: 1}, {Type: EnemyRanged, Weight: 2},
	}},
	{Number: 5, Count: 12, SpawnIntervalMs: 1000, Distribution: []SpawnWeight{
		{Type: EnemyFast, Weight: 2}, {Type: EnemyRanged, Weight: 2}, {Type: EnemyEnhanced, Weight: 1},
	}},
	{Number: 6, Count: 12, SpawnIntervalMs: 900, Distribution: []SpawnWeight{
		{Type: EnemyRanged, Weight: 2}, {Type: EnemyEnhanced, Weight: 2},
	}},
	{Number: 7, Count: 14, SpawnIntervalMs: 800, Distribution: []SpawnWeight{
		{Type: EnemyFast, Weight: 3}, {Type: EnemyEnhanced, Weight: 2},
	}},
	{Number: 8, Count: 8, SpawnIntervalMs: 900, Distribution: []SpawnWeight{
		{Type: EnemyEnhanced, Weight: 3}, {Type: EnemyBoss, Weight: 1},
	}},
}

// WaveForNumber returns the definition for a 1-based wave number, repeating
// the last defined wave indefinitely.
func WaveForNumber(waves []WaveDefinition, number int) WaveDefinition {
	if len(waves) == 0 {
		return WaveDefinition{Number: number}
	}
	if number < 1 {
		number = 1
	}
	if number > len(waves) {
		def := waves[len(waves)-1]
		def.Number = number
		return def
	}
	return waves[number-1]
}
