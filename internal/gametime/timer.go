// internal/gametime/timer.go
package gametime

import "errors"

var (
	ErrInvalidDuration = errors.New("gametime: duration must not be negative")
	ErrAlreadyStarted  = errors.New("gametime: timer already started")
	ErrNotRunning      = errors.New("gametime: timer is not running")
	ErrNotPaused       = errors.New("gametime: timer is not paused")
)

// TimerState is the lifecycle state of a Timer.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerPaused
	TimerStopped
)

func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "idle"
	case TimerRunning:
		return "running"
	case TimerPaused:
		return "paused"
	case TimerStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Timer is a wall-clock countdown with pause/resume semantics. Elapsed time
// accrues only while running; intervals spent paused are excluded. All time
// arithmetic goes through the injected Clock, never a blocking wait.
type Timer struct {
	clock           Clock
	totalDurationMs int64
	state           TimerState

	startedAt int64 // clock reading at the most recent start/resume
	accrued   int64 // elapsed ms banked across previous run intervals
}

// NewTimer builds a countdown over totalDurationSec seconds.
func NewTimer(totalDurationSec int64, clock Clock) (*Timer, error) {
	if totalDurationSec < 0 {
		return nil, ErrInvalidDuration
	}
	return &Timer{
		clock:           clock,
		totalDurationMs: totalDurationSec * 1000,
		state:           TimerIdle,
	}, nil
}

// State returns the timer's lifecycle state.
func (t *Timer) State() TimerState {
	return t.state
}

// Start begins the countdown. A timer that is already running or paused
// cannot be started again.
func (t *Timer) Start() error {
	if t.state == TimerRunning || t.state == TimerPaused {
		return ErrAlreadyStarted
	}
	t.accrued = 0
	t.startedAt = t.clock.NowMillis()
	t.state = TimerRunning
	return nil
}

// Pause freezes elapsed time.
func (t *Timer) Pause() error {
	if t.state != TimerRunning {
		return ErrNotRunning
	}
	t.accrued += t.clock.NowMillis() - t.startedAt
	t.state = TimerPaused
	return nil
}

// Resume continues the countdown from where Pause froze it.
func (t *Timer) Resume() error {
	if t.state != TimerPaused {
		return ErrNotPaused
	}
	t.startedAt = t.clock.NowMillis()
	t.state = TimerRunning
	return nil
}

// Stop ends the countdown. Stopping an idle or already stopped timer is a
// no-op.
func (t *Timer) Stop() {
	if t.state == TimerRunning {
		t.accrued += t.clock.NowMillis() - t.startedAt
	}
	t.state = TimerStopped
}

// ElapsedMillis returns the run time accrued so far, excluding paused spans.
func (t *Timer) ElapsedMillis() int64 {
	if t.state == TimerRunning {
		return t.accrued + t.clock.NowMillis() - t.startedAt
	}
	return t.accrued
}

// RemainingSeconds returns the countdown remainder, clamped at zero once the
// duration is exhausted.
func (t *Timer) RemainingSeconds() int64 {
	remaining := t.totalDurationMs - t.ElapsedMillis()
	if remaining < 0 {
		remaining = 0
	}
	return remaining / 1000
}

// ProgressPercentage returns how much of the countdown has elapsed, 0–100.
func (t *Timer) ProgressPercentage() float64 {
	if t.totalDurationMs == 0 {
		return 100
	}
	elapsed := t.ElapsedMillis()
	if elapsed >= t.totalDurationMs {
		return 100
	}
	return float64(elapsed) / float64(t.totalDurationMs) * 100
}

// IsTimeUp reports whether the countdown is exhausted.
func (t *Timer) IsTimeUp() bool {
	return t.ElapsedMillis() >= t.totalDurationMs
}
