// internal/mana/pool.go
package mana

import "errors"

var (
	ErrInvalidAmount   = errors.New("mana: amount must not be negative")
	ErrInvalidCapacity = errors.New("mana: capacity must be positive")
	ErrInsufficient    = errors.New("mana: insufficient mana")
)

// Transaction is one signed change to a pool: positive for generation,
// negative for consumption.
type Transaction struct {
	Amount    int
	Reason    string
	Timestamp int64 // milliseconds
}

// Pool is a clamped mana store with a transaction log. Current never leaves
// [0, max].
type Pool struct {
	id      string
	current int
	max     int
	log     []Transaction
}

// NewPool builds a pool holding initial mana, clamped to max.
func NewPool(id string, initial, max int) (*Pool, error) {
	if max <= 0 {
		return nil, ErrInvalidCapacity
	}
	if initial < 0 {
		return nil, ErrInvalidAmount
	}
	if initial > max {
		initial = max
	}
	return &Pool{id: id, current: initial, max: max}, nil
}

// ID returns the pool's identifier.
func (p *Pool) ID() string {
	return p.id
}

// Current returns the mana held.
func (p *Pool) Current() int {
	return p.current
}

// Max returns the pool's capacity.
func (p *Pool) Max() int {
	return p.max
}

// IsFull reports whether generation would be wasted.
func (p *Pool) IsFull() bool {
	return p.current >= p.max
}

// Generate adds mana, clamping at the pool's capacity, and logs the amount
// actually credited. Zero-amount requests are a successful no-op.
func (p *Pool) Generate(amount int, reason string, nowMillis int64) (int, error) {
	if amount < 0 {
		return 0, ErrInvalidAmount
	}
	if amount == 0 {
		return 0, nil
	}
	credited := amount
	if p.current+credited > p.max {
		credited = p.max - p.current
	}
	if credited == 0 {
		return 0, nil
	}
	p.current += credited
	p.log = append(p.log, Transaction{Amount: credited, Reason: reason, Timestamp: nowMillis})
	return credited, nil
}

// Consume removes mana. The operation is atomic: on shortage the pool and
// its log are untouched and ErrInsufficient is returned.
func (p *Pool) Consume(amount int, reason string, nowMillis int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if amount == 0 {
		return nil
	}
	if amount > p.current {
		return ErrInsufficient
	}
	p.current -= amount
	p.log = append(p.log, Transaction{Amount: -amount, Reason: reason, Timestamp: nowMillis})
	return nil
}

// CanAfford reports whether amount is available right now.
func (p *Pool) CanAfford(amount int) bool {
	return amount >= 0 && amount <= p.current
}

// Transactions returns a copy of the pool's log, oldest first.
func (p *Pool) Transactions() []Transaction {
	out := make([]Transaction, len(p.log))
	copy(out, p.log)
	return out
}
