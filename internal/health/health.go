// internal/health/health.go
package health

import "errors"

var (
	ErrNegativeValue = errors.New("health: value must not be negative")
	ErrMaxBelowValue = errors.New("health: max must not be below value")
)

// Value is an immutable clamped amount with a floor of 0 and an optional
// ceiling. Every mutation returns a new Value.
type Value struct {
	value  int
	max    int
	hasMax bool
}

// NewValue builds an unbounded Value.
func NewValue(value int) (Value, error) {
	if value < 0 {
		return Value{}, ErrNegativeValue
	}
	return Value{value: value}, nil
}

// NewBoundedValue builds a Value clamped to [0, max].
func NewBoundedValue(value, max int) (Value, error) {
	if value < 0 {
		return Value{}, ErrNegativeValue
	}
	if max < value {
		return Value{}, ErrMaxBelowValue
	}
	return Value{value: value, max: max, hasMax: true}, nil
}

// Int returns the current amount.
func (v Value) Int() int {
	return v.value
}

// Max returns the ceiling and whether one is set.
func (v Value) Max() (int, bool) {
	return v.max, v.hasMax
}

// Subtract returns a new Value lowered by amount, floored at 0. Non-positive
// amounts leave the value unchanged.
func (v Value) Subtract(amount int) Value {
	if amount <= 0 {
		return v
	}
	next := v.value - amount
	if next < 0 {
		next = 0
	}
	return Value{value: next, max: v.max, hasMax: v.hasMax}
}

// Add returns a new Value raised by amount, clamped to the ceiling when one
// is set. Non-positive amounts leave the value unchanged.
func (v Value) Add(amount int) Value {
	if amount <= 0 {
		return v
	}
	next := v.value + amount
	if v.hasMax && next > v.max {
		next = v.max
	}
	return Value{value: next, max: v.max, hasMax: v.hasMax}
}

// IsZero reports whether the value has reached its floor.
func (v Value) IsZero() bool {
	return v.value == 0
}

// Percentage returns value/max as 0–100. Unbounded values report 100.
func (v Value) Percentage() float64 {
	if !v.hasMax || v.max == 0 {
		return 100
	}
	return float64(v.value) / float64(v.max) * 100
}
