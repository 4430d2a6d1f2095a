// internal/app/waves_test.go
package app

import (
	"math/rand"
	"testing"

	"go-card-defense/internal/defs"
)

func TestWaveSchedulerFirstWave(t *testing.T) {
	ws := newWaveScheduler(defs.DefaultWaves, rand.New(rand.NewSource(1)))

	spawns, started := ws.Advance(100)
	if started == nil {
		t.Fatalf("expected wave 1 to start on the first tick")
	}
	if ws.CurrentWave() != 1 {
		t.Fatalf("expected current wave 1, got %d", ws.CurrentWave())
	}
	if len(spawns) != 1 {
		t.Fatalf("expected the first spawn immediately, got %d spawns", len(spawns))
	}
	if spawns[0] != defs.EnemyBasic {
		t.Fatalf("wave 1 only spawns basic enemies, got %v", spawns[0])
	}

	total := len(spawns)
	for i := 0; i < 4; i++ {
		more, again := ws.Advance(1600)
		if again != nil {
			t.Fatalf("wave 2 must not start before wave 1 finishes spawning")
		}
		total += len(more)
	}
	if total != 5 {
		t.Fatalf("wave 1 spawns 5 enemies, got %d", total)
	}
}

func TestWaveSchedulerBreakBetweenWaves(t *testing.T) {
	ws := newWaveScheduler(defs.DefaultWaves, rand.New(rand.NewSource(1)))

	// Drain wave 1 entirely.
	spawned := 0
	for i := 0; i < 10 && spawned < 5; i++ {
		spawns, _ := ws.Advance(1600)
		spawned += len(spawns)
	}
	if spawned != 5 {
		t.Fatalf("failed to drain wave 1, spawned %d", spawned)
	}

	if _, started := ws.Advance(interWaveBreakMs / 2); started != nil {
		t.Fatalf("wave 2 started before the break elapsed")
	}
	_, started := ws.Advance(interWaveBreakMs)
	if started == nil {
		t.Fatalf("expected wave 2 after the break")
	}
	if started.Number != 2 || ws.CurrentWave() != 2 {
		t.Fatalf("expected wave 2, got definition %d current %d", started.Number, ws.CurrentWave())
	}
}

func TestWaveSchedulerRepeatsLastWave(t *testing.T) {
	ws := newWaveScheduler(defs.DefaultWaves, rand.New(rand.NewSource(7)))
	last := defs.DefaultWaves[len(defs.DefaultWaves)-1]

	// Run long enough to exhaust the table several times over.
	for i := 0; i < 2000; i++ {
		ws.Advance(250)
	}
	if ws.CurrentWave() <= len(defs.DefaultWaves) {
		t.Fatalf("expected the scheduler to pass the table, still on wave %d", ws.CurrentWave())
	}
	if got := defs.WaveForNumber(defs.DefaultWaves, ws.CurrentWave()); got.Count != last.Count {
		t.Fatalf("waves past the table repeat the last definition, got count %d", got.Count)
	}
}
