// internal/card/card.go
package card

import (
	"errors"

	"go-card-defense/internal/defs"
)

var (
	ErrEmptyField    = errors.New("card: id, name and description must not be empty")
	ErrNegativeCost  = errors.New("card: cost must not be negative")
	ErrHandFull      = errors.New("card: hand is at capacity")
	ErrDuplicateCard = errors.New("card: card already in hand")
	ErrCardNotFound  = errors.New("card: card not found")
	ErrPoolTooSmall  = errors.New("card: pool cannot supply enough distinct cards")
)

// Card is an immutable playable card. Identity is the ID alone; two cards
// with the same ID are the same card regardless of other fields.
type Card struct {
	id             string
	name           string
	description    string
	cost           int
	towerType      defs.TowerType
	specialAbility string
}

// NewCard validates and builds a card.
func NewCard(id, name, description string, cost int, towerType defs.TowerType, specialAbility string) (Card, error) {
	if id == "" || name == "" || description == "" {
		return Card{}, ErrEmptyField
	}
	if cost < 0 {
		return Card{}, ErrNegativeCost
	}
	return Card{
		id:             id,
		name:           name,
		description:    description,
		cost:           cost,
		towerType:      towerType,
		specialAbility: specialAbility,
	}, nil
}

// FromDefinition builds a card from a catalog entry.
func FromDefinition(def defs.CardDefinition) (Card, error) {
	return NewCard(def.ID, def.Name, def.Description, def.Cost, def.TowerType, def.SpecialAbility)
}

func (c Card) ID() string                { return c.id }
func (c Card) Name() string              { return c.name }
func (c Card) Description() string       { return c.description }
func (c Card) Cost() int                 { return c.cost }
func (c Card) TowerType() defs.TowerType { return c.towerType }
func (c Card) SpecialAbility() string    { return c.specialAbility }

// Equals reports identity by ID only.
func (c Card) Equals(other Card) bool {
	return c.id == other.id
}
