package card

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"go-card-defense/internal/defs"
)

func buildPool(t *testing.T, n int) *Pool {
	t.Helper()
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, mustCard(t, fmt.Sprintf("CARD_%03d", i)))
	}
	return NewPool(cards)
}

func TestPoolDropsDuplicateIDs(t *testing.T) {
	a := mustCard(t, "CARD_A")
	dup, err := NewCard("CARD_A", "Other", "other text", 4, defs.TowerCannon, "splash")
	if err != nil {
		t.Fatalf("new card: %v", err)
	}
	pool := NewPool([]Card{a, dup})
	if pool.Size() != 1 {
		t.Fatalf("expected duplicate id collapsed, size %d", pool.Size())
	}
	kept, err := pool.Get("CARD_A")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if kept.Name() != a.Name() {
		t.Fatalf("expected first card kept, got %s", kept.Name())
	}
}

func TestPoolDrawDealsDistinctCards(t *testing.T) {
	pool := buildPool(t, 30)
	rng := rand.New(rand.NewSource(7))
	drawn, err := pool.Draw(8, rng)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if len(drawn) != 8 {
		t.Fatalf("expected 8 cards, got %d", len(drawn))
	}
	seen := make(map[string]bool)
	for _, c := range drawn {
		if seen[c.ID()] {
			t.Fatalf("duplicate card %s in one deal", c.ID())
		}
		seen[c.ID()] = true
	}
	if pool.Size() != 30 {
		t.Fatalf("draw must not shrink the pool, size %d", pool.Size())
	}
}

func TestPoolDrawFailsFastWhenTooSmall(t *testing.T) {
	pool := buildPool(t, 5)
	rng := rand.New(rand.NewSource(7))
	if _, err := pool.Draw(8, rng); !errors.Is(err, ErrPoolTooSmall) {
		t.Fatalf("expected ErrPoolTooSmall, got %v", err)
	}
	if !pool.CanDeal(5) || pool.CanDeal(6) {
		t.Fatalf("CanDeal disagrees with pool size %d", pool.Size())
	}
}
