// internal/app/waves.go
package app

import (
	"math/rand"

	"go-card-defense/internal/defs"
)

// interWaveBreakMs is the pause between the last spawn of a wave and the
// first spawn of the next one.
const interWaveBreakMs = 5000.0

// waveScheduler turns elapsed simulation time into spawn orders. It walks
// the wave table one definition at a time, spawning on a fixed interval,
// with a short break between waves.
type waveScheduler struct {
	table       []defs.WaveDefinition
	rng         *rand.Rand
	waveNumber  int
	current     defs.WaveDefinition
	spawned     int
	sinceSpawn  float64
	breakLeft   float64
	waitingNext bool
}

func newWaveScheduler(table []defs.WaveDefinition, rng *rand.Rand) *waveScheduler {
	ws := &waveScheduler{table: table, rng: rng}
	ws.reset()
	return ws
}

func (ws *waveScheduler) reset() {
	ws.waveNumber = 0
	ws.spawned = 0
	ws.sinceSpawn = 0
	ws.breakLeft = 0
	ws.waitingNext = true
}

// CurrentWave returns the number of the wave being spawned, starting at 1.
func (ws *waveScheduler) CurrentWave() int {
	return ws.waveNumber
}

// Advance moves the scheduler by deltaMs. It returns the enemy types to
// spawn this tick and, when a new wave begins, that wave's definition.
func (ws *waveScheduler) Advance(deltaMs float64) ([]defs.EnemyType, *defs.WaveDefinition) {
	var started *defs.WaveDefinition
	if ws.waitingNext {
		ws.breakLeft -= deltaMs
		if ws.breakLeft > 0 {
			return nil, nil
		}
		ws.waveNumber++
		ws.current = defs.WaveForNumber(ws.table, ws.waveNumber)
		ws.spawned = 0
		// Spawn the first enemy of a wave immediately.
		ws.sinceSpawn = float64(ws.current.SpawnIntervalMs)
		ws.waitingNext = false
		def := ws.current
		started = &def
	}

	var spawns []defs.EnemyType
	ws.sinceSpawn += deltaMs
	for ws.spawned < ws.current.Count && ws.sinceSpawn >= float64(ws.current.SpawnIntervalMs) {
		ws.sinceSpawn -= float64(ws.current.SpawnIntervalMs)
		spawns = append(spawns, ws.pickType())
		ws.spawned++
	}
	if ws.spawned >= ws.current.Count {
		ws.waitingNext = true
		ws.breakLeft = interWaveBreakMs
	}
	return spawns, started
}

func (ws *waveScheduler) pickType() defs.EnemyType {
	total := 0
	for _, w := range ws.current.Distribution {
		total += w.Weight
	}
	if total <= 0 {
		return defs.EnemyBasic
	}
	roll := ws.rng.Intn(total)
	for _, w := range ws.current.Distribution {
		roll -= w.Weight
		if roll < 0 {
			return w.Type
		}
	}
	return defs.EnemyBasic
}
