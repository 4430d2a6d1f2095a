// internal/session/state.go
package session

// GameState is the session lifecycle state. Transitions are restricted to
// the table encoded in CanTransitionTo; anything else is rejected with
// ErrInvalidTransition.
type GameState int

const (
	StateNotStarted GameState = iota
	StateRunning
	StatePaused
	StateCompleted
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// IsActive reports whether gameplay bookkeeping (score, damage, card play)
// is accepted in this state.
func (s GameState) IsActive() bool {
	return s == StateRunning || s == StatePaused
}

// IsTerminal reports whether the session has ended.
func (s GameState) IsTerminal() bool {
	return s == StateCompleted || s == StateGameOver
}

// CanTransitionTo encodes the legal transition table:
// NotStarted→Running, Running⇄Paused, Running|Paused→Completed|GameOver.
func (s GameState) CanTransitionTo(next GameState) bool {
	switch s {
	case StateNotStarted:
		return next == StateRunning
	case StateRunning:
		return next == StatePaused || next == StateCompleted || next == StateGameOver
	case StatePaused:
		return next == StateRunning || next == StateCompleted || next == StateGameOver
	default:
		return false
	}
}
