// internal/gametime/clock.go
package gametime

import "time"

// Clock supplies the current time in milliseconds. The production
// implementation reads the system clock; tests inject a ManualClock so timer
// behavior is deterministic.
type Clock interface {
	NowMillis() int64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ManualClock is a settable clock for tests.
type ManualClock struct {
	now int64
}

// NewManualClock starts a manual clock at the given millisecond timestamp.
func NewManualClock(now int64) *ManualClock {
	return &ManualClock{now: now}
}

func (c *ManualClock) NowMillis() int64 {
	return c.now
}

// Advance moves the clock forward by deltaMs.
func (c *ManualClock) Advance(deltaMs int64) {
	c.now += deltaMs
}

// Set moves the clock to an absolute millisecond timestamp.
func (c *ManualClock) Set(now int64) {
	c.now = now
}
