package health

import (
	"errors"
	"testing"
)

func TestNewValueValidation(t *testing.T) {
	if _, err := NewValue(-1); !errors.Is(err, ErrNegativeValue) {
		t.Fatalf("expected ErrNegativeValue, got %v", err)
	}
	if _, err := NewBoundedValue(10, 5); !errors.Is(err, ErrMaxBelowValue) {
		t.Fatalf("expected ErrMaxBelowValue, got %v", err)
	}
}

func TestValueNeverEscapesBounds(t *testing.T) {
	v, err := NewBoundedValue(50, 100)
	if err != nil {
		t.Fatalf("new value: %v", err)
	}
	// Arbitrary damage/heal sequence; bounds must hold after every step.
	steps := []struct {
		damage int
		heal   int
	}{
		{damage: 30}, {heal: 200}, {damage: 500}, {heal: 10},
		{damage: -5}, {heal: -5}, {heal: 1000}, {damage: 99},
	}
	for i, step := range steps {
		if step.damage != 0 {
			v = v.Subtract(step.damage)
		}
		if step.heal != 0 {
			v = v.Add(step.heal)
		}
		if v.Int() < 0 || v.Int() > 100 {
			t.Fatalf("step %d: value %d escaped [0, 100]", i, v.Int())
		}
	}
}

func TestValueImmutability(t *testing.T) {
	v, err := NewBoundedValue(80, 100)
	if err != nil {
		t.Fatalf("new value: %v", err)
	}
	_ = v.Subtract(30)
	if v.Int() != 80 {
		t.Fatalf("Subtract mutated the receiver: %d", v.Int())
	}
	_ = v.Add(30)
	if v.Int() != 80 {
		t.Fatalf("Add mutated the receiver: %d", v.Int())
	}
}

func TestValuePercentage(t *testing.T) {
	v, err := NewBoundedValue(25, 100)
	if err != nil {
		t.Fatalf("new value: %v", err)
	}
	if got := v.Percentage(); got != 25 {
		t.Fatalf("expected 25%%, got %f", got)
	}
	unbounded, err := NewValue(7)
	if err != nil {
		t.Fatalf("new value: %v", err)
	}
	if got := unbounded.Percentage(); got != 100 {
		t.Fatalf("expected unbounded value to report 100%%, got %f", got)
	}
}

func TestBaseHealthLifecycle(t *testing.T) {
	base, err := NewBaseHealth(100)
	if err != nil {
		t.Fatalf("new base health: %v", err)
	}
	base.Damage(40)
	if base.Current() != 60 {
		t.Fatalf("expected 60 after 40 damage, got %d", base.Current())
	}
	if base.IsDead() {
		t.Fatalf("base should not be dead at 60")
	}
	if !base.IsBelow(75) {
		t.Fatalf("expected 60%% to be below 75%%")
	}
	base.Heal(100)
	if base.Current() != 100 {
		t.Fatalf("expected heal clamp at 100, got %d", base.Current())
	}
	base.Damage(250)
	if base.Current() != 0 || !base.IsDead() {
		t.Fatalf("expected dead base at 0, got %d", base.Current())
	}
	base.Reset()
	if base.Current() != 100 || base.IsDead() {
		t.Fatalf("expected full health after reset, got %d", base.Current())
	}
}
