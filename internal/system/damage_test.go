package system

import (
	"errors"
	"testing"

	"go-card-defense/internal/defs"
	"go-card-defense/internal/unit"
	"go-card-defense/pkg/geom"
)

func TestApplyScalesByMultiplier(t *testing.T) {
	path := testPath(t, 800)
	svc := NewDamageService()
	if err := svc.SetMultiplier(1.5); err != nil {
		t.Fatalf("set multiplier: %v", err)
	}
	enemy := unit.NewEnemy("enemy-1", defs.EnemyBasic, path, 0) // 100 health

	if destroyed := svc.Apply(enemy, 25); destroyed {
		t.Fatalf("38 damage must not destroy a 100 health enemy")
	}
	// 25 × 1.5 = 37.5, rounded to 38.
	if enemy.CurrentHealth() != 62 {
		t.Fatalf("expected health 62, got %d", enemy.CurrentHealth())
	}
}

func TestApplyIgnoresDeadAndNonPositive(t *testing.T) {
	path := testPath(t, 800)
	svc := NewDamageService()
	enemy := unit.NewEnemy("enemy-1", defs.EnemyFast, path, 0)

	if svc.Apply(enemy, 0) || svc.Apply(enemy, -10) {
		t.Fatalf("non-positive damage must be ignored")
	}
	if svc.Apply(nil, 10) {
		t.Fatalf("nil enemy must be ignored")
	}

	if !svc.Apply(enemy, 1000) {
		t.Fatalf("expected destruction")
	}
	if svc.Apply(enemy, 1000) {
		t.Fatalf("destruction must only be reported on the alive→dead transition")
	}
	if got := svc.Stats().EnemiesDestroyed; got != 1 {
		t.Fatalf("expected 1 destruction in stats, got %d", got)
	}
}

func TestSetMultiplierRejectsNegative(t *testing.T) {
	svc := NewDamageService()
	if err := svc.SetMultiplier(-0.5); !errors.Is(err, ErrInvalidMultiplier) {
		t.Fatalf("expected ErrInvalidMultiplier, got %v", err)
	}
	if err := svc.SetMultiplier(0); err != nil {
		t.Fatalf("zero multiplier is legal (damage disabled): %v", err)
	}
}

func TestApplyAreaHitsOnlyAliveWithinRadius(t *testing.T) {
	path := testPath(t, 1000)
	svc := NewDamageService()
	near := unit.NewEnemy("near", defs.EnemyFast, path, 0) // at (0,0), 60 health
	mid := unit.NewEnemy("mid", defs.EnemyBasic, path, 0)
	mid.Move(1250) // 80 px/s × 1.25s = (100, 0)
	far := unit.NewEnemy("far", defs.EnemyBasic, path, 0)
	far.Move(5000) // (400, 0)
	dead := unit.NewEnemy("dead", defs.EnemyFast, path, 0)
	dead.Destroy()

	destroyed := svc.ApplyArea([]*unit.Enemy{near, mid, far, dead},
		geom.Point{X: 0, Y: 0}, 100, 70)

	// near (60hp) dies, mid at exactly radius 100 is included but survives,
	// far and dead are untouched.
	if len(destroyed) != 1 || destroyed[0].ID() != "near" {
		t.Fatalf("expected only near destroyed, got %v", destroyed)
	}
	if mid.CurrentHealth() != 30 {
		t.Fatalf("expected inclusive radius hit on mid, health %d", mid.CurrentHealth())
	}
	if far.CurrentHealth() != far.MaxHealth() {
		t.Fatalf("far enemy was hit")
	}
}

func TestRecommendTargetPrefersOneHitKill(t *testing.T) {
	path := testPath(t, 800)
	svc := NewDamageService()

	tough := unit.NewEnemy("tough", defs.EnemyBoss, path, 0)      // 800hp
	weakLow := unit.NewEnemy("weak-low", defs.EnemyFast, path, 0) // 60hp, attack 5
	weakHit := unit.NewEnemy("weak-hit", defs.EnemyRanged, path, 0)
	weakHit.TakeDamage(30) // 50hp left, attack 15

	// 60 damage kills both weak enemies; the higher attack power wins.
	target := svc.RecommendTarget([]*unit.Enemy{tough, weakLow, weakHit}, 60)
	if target == nil || target.ID() != "weak-hit" {
		t.Fatalf("expected highest-attack killable enemy, got %v", target)
	}

	// Nothing killable: fall back to the lowest current health.
	target = svc.RecommendTarget([]*unit.Enemy{tough, weakLow, weakHit}, 10)
	if target == nil || target.ID() != "weak-hit" {
		t.Fatalf("expected lowest-health enemy, got %v", target)
	}

	if svc.RecommendTarget(nil, 50) != nil {
		t.Fatalf("expected nil with no candidates")
	}
}

func TestDamageStatsPerType(t *testing.T) {
	path := testPath(t, 800)
	svc := NewDamageService()
	basic := unit.NewEnemy("basic", defs.EnemyBasic, path, 0)
	boss := unit.NewEnemy("boss", defs.EnemyBoss, path, 0)
	svc.Apply(basic, 30)
	svc.Apply(boss, 50)
	svc.Apply(boss, 20)

	stats := svc.Stats()
	if stats.TotalDamage != 100 {
		t.Fatalf("expected 100 total damage, got %d", stats.TotalDamage)
	}
	if stats.DamageByType[defs.EnemyBasic] != 30 || stats.DamageByType[defs.EnemyBoss] != 70 {
		t.Fatalf("unexpected per-type stats %+v", stats.DamageByType)
	}
	// The returned map is a copy.
	stats.DamageByType[defs.EnemyBasic] = 9999
	if svc.Stats().DamageByType[defs.EnemyBasic] != 30 {
		t.Fatalf("stats map escaped the service")
	}
}
