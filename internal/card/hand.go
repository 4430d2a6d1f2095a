// internal/card/hand.go
package card

// Hand is the player's current cards, ordered by insertion, with a capacity
// fixed at construction. A card id appears at most once.
type Hand struct {
	cards    []Card
	capacity int
}

// NewHand builds an empty hand with the given capacity.
func NewHand(capacity int) *Hand {
	if capacity < 0 {
		capacity = 0
	}
	return &Hand{capacity: capacity}
}

// Capacity returns the fixed maximum hand size.
func (h *Hand) Capacity() int {
	return h.capacity
}

// Size returns the number of cards held.
func (h *Hand) Size() int {
	return len(h.cards)
}

// IsFull reports whether the hand is at capacity.
func (h *Hand) IsFull() bool {
	return len(h.cards) >= h.capacity
}

// Add appends a card. Fails if the hand is full or already holds the id;
// the hand is unchanged on failure.
func (h *Hand) Add(c Card) error {
	if h.IsFull() {
		return ErrHandFull
	}
	if h.Contains(c.ID()) {
		return ErrDuplicateCard
	}
	h.cards = append(h.cards, c)
	return nil
}

// Remove takes the card with the given id out of the hand and returns it.
func (h *Hand) Remove(id string) (Card, error) {
	for i, c := range h.cards {
		if c.ID() == id {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return c, nil
		}
	}
	return Card{}, ErrCardNotFound
}

// Contains reports whether the hand holds the id.
func (h *Hand) Contains(id string) bool {
	for _, c := range h.cards {
		if c.ID() == id {
			return true
		}
	}
	return false
}

// Get returns the card with the given id without removing it.
func (h *Hand) Get(id string) (Card, error) {
	for _, c := range h.cards {
		if c.ID() == id {
			return c, nil
		}
	}
	return Card{}, ErrCardNotFound
}

// Cards returns a copy of the hand's contents; mutating it never affects the
// hand.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Clear empties the hand and returns the removed cards.
func (h *Hand) Clear() []Card {
	out := h.cards
	h.cards = nil
	return out
}
