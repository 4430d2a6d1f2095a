package system

import (
	"fmt"
	"testing"

	"go-card-defense/internal/defs"
	"go-card-defense/internal/unit"
	"go-card-defense/pkg/geom"
)

func testPath(t *testing.T, lengthPx float64) *geom.MovementPath {
	t.Helper()
	path, err := geom.NewMovementPath([]geom.Point{{X: 0, Y: 0}, {X: lengthPx, Y: 0}})
	if err != nil {
		t.Fatalf("new path: %v", err)
	}
	return path
}

func TestMoveAllAdvancesAliveEnemies(t *testing.T) {
	path := testPath(t, 800)
	svc := NewMovementService(0)
	alive := unit.NewEnemy("alive", defs.EnemyBasic, path, 0)
	dead := unit.NewEnemy("dead", defs.EnemyBasic, path, 0)
	dead.Destroy()

	arrived := svc.MoveAll([]*unit.Enemy{alive, dead}, 1000)
	if len(arrived) != 0 {
		t.Fatalf("nobody should be at the base yet")
	}
	if alive.PathProgress() == 0 {
		t.Fatalf("alive enemy did not move")
	}
	if dead.PathProgress() != 0 {
		t.Fatalf("dead enemy moved")
	}
	if svc.Stats().TotalUpdates != 1 {
		t.Fatalf("expected one counted update, got %d", svc.Stats().TotalUpdates)
	}
}

func TestMoveAllReportsArrivalOnce(t *testing.T) {
	path := testPath(t, 100)
	svc := NewMovementService(0)
	enemy := unit.NewEnemy("runner", defs.EnemyFast, path, 0) // 140 px/s

	arrived := svc.MoveAll([]*unit.Enemy{enemy}, 2000)
	if len(arrived) != 1 || arrived[0].ID() != "runner" {
		t.Fatalf("expected arrival, got %v", arrived)
	}
	arrived = svc.MoveAll([]*unit.Enemy{enemy}, 2000)
	if len(arrived) != 0 {
		t.Fatalf("arrival reported twice")
	}
	if svc.Stats().EnemiesAtBase != 1 {
		t.Fatalf("expected one base arrival in stats, got %d", svc.Stats().EnemiesAtBase)
	}
}

func TestMoveAllHonorsUpdateCap(t *testing.T) {
	path := testPath(t, 10000)
	svc := NewMovementService(2)
	enemies := make([]*unit.Enemy, 5)
	for i := range enemies {
		enemies[i] = unit.NewEnemy(fmt.Sprintf("enemy-%d", i), defs.EnemyBasic, path, 0)
	}
	svc.MoveAll(enemies, 1000)

	moved := 0
	for _, e := range enemies {
		if e.PathProgress() > 0 {
			moved++
		}
	}
	if moved != 2 {
		t.Fatalf("expected cap of 2 updates, %d enemies moved", moved)
	}
}

func TestMovementStatsAverageSpeed(t *testing.T) {
	path := testPath(t, 10000)
	svc := NewMovementService(0)
	basic := unit.NewEnemy("basic", defs.EnemyBasic, path, 0) // 80
	fast := unit.NewEnemy("fast", defs.EnemyFast, path, 0)    // 140
	svc.MoveAll([]*unit.Enemy{basic, fast}, 500)
	if got := svc.Stats().AverageSpeed; got != 110 {
		t.Fatalf("expected running average speed 110, got %f", got)
	}
}
