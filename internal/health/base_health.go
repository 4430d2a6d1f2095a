// internal/health/base_health.go
package health

// BaseHealth tracks the defended base's hit points. It wraps an immutable
// Value and replaces it on every mutation, so bounds checking lives in one
// place.
type BaseHealth struct {
	value Value
	max   int
}

// NewBaseHealth builds a base at full health.
func NewBaseHealth(max int) (*BaseHealth, error) {
	v, err := NewBoundedValue(max, max)
	if err != nil {
		return nil, err
	}
	return &BaseHealth{value: v, max: max}, nil
}

// Damage lowers the base's health, floored at 0.
func (b *BaseHealth) Damage(amount int) {
	b.value = b.value.Subtract(amount)
}

// Heal raises the base's health, clamped to its maximum.
func (b *BaseHealth) Heal(amount int) {
	b.value = b.value.Add(amount)
}

// Reset restores full health.
func (b *BaseHealth) Reset() {
	v, _ := NewBoundedValue(b.max, b.max)
	b.value = v
}

// Current returns the current hit points.
func (b *BaseHealth) Current() int {
	return b.value.Int()
}

// MaxHealth returns the configured ceiling.
func (b *BaseHealth) MaxHealth() int {
	return b.max
}

// Percentage returns current/max as 0–100.
func (b *BaseHealth) Percentage() float64 {
	return b.value.Percentage()
}

// IsDead reports whether the base has no health left.
func (b *BaseHealth) IsDead() bool {
	return b.value.IsZero()
}

// IsBelow reports whether health is strictly under the given percentage,
// for low-health warnings.
func (b *BaseHealth) IsBelow(percent float64) bool {
	return b.Percentage() < percent
}
