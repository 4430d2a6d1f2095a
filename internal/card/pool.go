// internal/card/pool.go
package card

import "math/rand"

// Pool is the shared draw source for sessions. It is read-only during play;
// Draw deals copies and never removes cards from the pool.
type Pool struct {
	cards []Card
	byID  map[string]Card
}

// NewPool builds a pool over the given cards, dropping duplicate ids.
func NewPool(cards []Card) *Pool {
	p := &Pool{byID: make(map[string]Card, len(cards))}
	for _, c := range cards {
		if _, dup := p.byID[c.ID()]; dup {
			continue
		}
		p.byID[c.ID()] = c
		p.cards = append(p.cards, c)
	}
	return p
}

// Size returns the number of distinct cards in the pool.
func (p *Pool) Size() int {
	return len(p.cards)
}

// Get returns the card with the given id.
func (p *Pool) Get(id string) (Card, error) {
	c, ok := p.byID[id]
	if !ok {
		return Card{}, ErrCardNotFound
	}
	return c, nil
}

// CanDeal reports whether the pool holds at least count distinct cards.
func (p *Pool) CanDeal(count int) bool {
	return count >= 0 && len(p.cards) >= count
}

// Draw deals count distinct cards at random. It validates up front and
// fails without a partial deal when the pool is too small.
func (p *Pool) Draw(count int, rng *rand.Rand) ([]Card, error) {
	if !p.CanDeal(count) {
		return nil, ErrPoolTooSmall
	}
	indexes := rng.Perm(len(p.cards))[:count]
	out := make([]Card, 0, count)
	for _, i := range indexes {
		out = append(out, p.cards[i])
	}
	return out, nil
}

// Cards returns a copy of the pool's contents.
func (p *Pool) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}
