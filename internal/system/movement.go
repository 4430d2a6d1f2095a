// internal/system/movement.go
package system

import "go-card-defense/internal/unit"

// MovementStats is advisory telemetry accumulated by the movement service.
// It never feeds back into simulation correctness.
type MovementStats struct {
	TotalUpdates     int64
	EnemiesAtBase    int64
	AverageSpeed     float64
	totalSpeedMoved  float64
	movedEnemyCount  int64
}

// MovementService advances enemies along their paths each tick. An optional
// per-tick update cap sheds load when the enemy count spikes; capped enemies
// simply move on a later tick.
type MovementService struct {
	maxUpdatesPerTick int
	stats             MovementStats
	reachedBase       map[string]bool
}

// NewMovementService builds a service. maxUpdatesPerTick of zero or less
// means unlimited.
func NewMovementService(maxUpdatesPerTick int) *MovementService {
	return &MovementService{
		maxUpdatesPerTick: maxUpdatesPerTick,
		reachedBase:       make(map[string]bool),
	}
}

// MoveAll advances every alive enemy by deltaMs, honoring the per-tick cap,
// and returns the enemies that reached the base during this call. Each
// enemy's arrival is reported exactly once.
func (s *MovementService) MoveAll(enemies []*unit.Enemy, deltaMs float64) []*unit.Enemy {
	var arrived []*unit.Enemy
	updates := 0
	for _, e := range enemies {
		if s.maxUpdatesPerTick > 0 && updates >= s.maxUpdatesPerTick {
			break
		}
		if !e.IsAlive() {
			continue
		}
		e.Move(deltaMs)
		updates++
		s.stats.TotalUpdates++
		s.stats.totalSpeedMoved += e.Speed()
		s.stats.movedEnemyCount++

		if e.IsAtBase() && !s.reachedBase[e.ID()] {
			s.reachedBase[e.ID()] = true
			s.stats.EnemiesAtBase++
			arrived = append(arrived, e)
		}
	}
	if s.stats.movedEnemyCount > 0 {
		s.stats.AverageSpeed = s.stats.totalSpeedMoved / float64(s.stats.movedEnemyCount)
	}
	return arrived
}

// Forget drops arrival bookkeeping for an enemy that left the simulation.
func (s *MovementService) Forget(enemyID string) {
	delete(s.reachedBase, enemyID)
}

// Stats returns a copy of the accumulated telemetry.
func (s *MovementService) Stats() MovementStats {
	return s.stats
}
