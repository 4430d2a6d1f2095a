package card

import (
	"errors"
	"testing"

	"go-card-defense/internal/defs"
)

func mustCard(t *testing.T, id string) Card {
	t.Helper()
	c, err := NewCard(id, "Name "+id, "Description "+id, 2, defs.TowerArcher, "")
	if err != nil {
		t.Fatalf("new card %s: %v", id, err)
	}
	return c
}

func TestNewCardValidation(t *testing.T) {
	tests := []struct {
		name        string
		id, cname   string
		description string
		cost        int
		err         error
	}{
		{name: "empty id", id: "", cname: "A", description: "d", cost: 1, err: ErrEmptyField},
		{name: "empty name", id: "CARD_A", cname: "", description: "d", cost: 1, err: ErrEmptyField},
		{name: "empty description", id: "CARD_A", cname: "A", description: "", cost: 1, err: ErrEmptyField},
		{name: "negative cost", id: "CARD_A", cname: "A", description: "d", cost: -1, err: ErrNegativeCost},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCard(tc.id, tc.cname, tc.description, tc.cost, defs.TowerArcher, "")
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
		})
	}
	if _, err := NewCard("CARD_A", "A", "d", 0, defs.TowerArcher, ""); err != nil {
		t.Fatalf("zero cost must be valid, got %v", err)
	}
}

func TestCardIdentityByID(t *testing.T) {
	a, err := NewCard("CARD_A", "First", "one", 2, defs.TowerArcher, "")
	if err != nil {
		t.Fatalf("new card: %v", err)
	}
	b, err := NewCard("CARD_A", "Second", "two", 5, defs.TowerCannon, "splash")
	if err != nil {
		t.Fatalf("new card: %v", err)
	}
	if !a.Equals(b) {
		t.Fatalf("cards with the same id must be equal")
	}
}
