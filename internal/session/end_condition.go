// internal/session/end_condition.go
package session

import (
	"go-card-defense/internal/gametime"
	"go-card-defense/internal/health"
)

// EndReason is the terminal cause of a session, distinct from the resulting
// GameState.
type EndReason string

const (
	ReasonNone        EndReason = ""
	ReasonTimeUp      EndReason = "time-up"
	ReasonPlayerDeath EndReason = "player-death"
)

// CheckEndCondition is a pure predicate over the session's timer, base
// health, and state. Time-up is checked before player death; both derive
// from monotonically worsening state, so the order only matters in the exact
// frame where both become true, and that frame records time-up.
func CheckEndCondition(timer *gametime.Timer, base *health.BaseHealth, state GameState) (EndReason, bool) {
	if !state.IsActive() {
		return ReasonNone, false
	}
	if timer.IsTimeUp() {
		return ReasonTimeUp, true
	}
	if base.IsDead() {
		return ReasonPlayerDeath, true
	}
	return ReasonNone, false
}
