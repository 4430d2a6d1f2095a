// internal/unit/enemy.go
package unit

import (
	"go-card-defense/internal/defs"
	"go-card-defense/pkg/geom"
)

// Enemy is a mutable combat unit bound to a movement path. Stats are fixed
// by its kind at spawn. Death is permanent: once health reaches zero the
// enemy never revives and further damage or movement is ignored.
type Enemy struct {
	id            string
	enemyType     defs.EnemyType
	path          *geom.MovementPath
	currentHealth int
	maxHealth     int
	attackPower   int
	speed         float64
	pathProgress  float64
	alive         bool
	spawnTime     int64 // milliseconds
}

// NewEnemy spawns an enemy of the given kind at the start of path.
func NewEnemy(id string, enemyType defs.EnemyType, path *geom.MovementPath, spawnTime int64) *Enemy {
	stats := enemyType.Stats()
	return &Enemy{
		id:            id,
		enemyType:     enemyType,
		path:          path,
		currentHealth: stats.Health,
		maxHealth:     stats.Health,
		attackPower:   stats.AttackPower,
		speed:         stats.Speed,
		alive:         true,
		spawnTime:     spawnTime,
	}
}

func (e *Enemy) ID() string                { return e.id }
func (e *Enemy) Type() defs.EnemyType      { return e.enemyType }
func (e *Enemy) CurrentHealth() int        { return e.currentHealth }
func (e *Enemy) MaxHealth() int            { return e.maxHealth }
func (e *Enemy) AttackPower() int          { return e.attackPower }
func (e *Enemy) Speed() float64            { return e.speed }
func (e *Enemy) PathProgress() float64     { return e.pathProgress }
func (e *Enemy) IsAlive() bool             { return e.alive }
func (e *Enemy) SpawnTime() int64          { return e.spawnTime }
func (e *Enemy) Path() *geom.MovementPath  { return e.path }

// Position returns the enemy's world position for its current progress.
func (e *Enemy) Position() geom.Point {
	return e.path.PositionAtProgress(e.pathProgress)
}

// TakeDamage lowers health, flooring at zero. Non-positive amounts and hits
// on a dead enemy are ignored. Returns whether this call killed the enemy.
func (e *Enemy) TakeDamage(amount int) bool {
	if !e.alive || amount <= 0 {
		return false
	}
	e.currentHealth -= amount
	if e.currentHealth <= 0 {
		e.currentHealth = 0
		e.alive = false
		return true
	}
	return false
}

// Move advances the enemy along its path by speed × deltaMs, clamped at the
// base. Dead enemies and non-positive deltas do not move.
func (e *Enemy) Move(deltaMs float64) {
	if !e.alive || deltaMs <= 0 {
		return
	}
	e.pathProgress = e.path.AdvanceProgress(e.pathProgress, e.speed, deltaMs)
}

// IsAtBase reports whether the enemy has exhausted its path.
func (e *Enemy) IsAtBase() bool {
	return e.pathProgress >= 1
}

// AttackBase returns the damage the enemy deals on reaching the base. Pure;
// the caller applies it to BaseHealth.
func (e *Enemy) AttackBase() int {
	return e.attackPower
}

// Destroy marks the enemy dead regardless of remaining health. Idempotent.
func (e *Enemy) Destroy() {
	e.currentHealth = 0
	e.alive = false
}
