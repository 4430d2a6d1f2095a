// internal/session/score.go
package session

import "go-card-defense/internal/defs"

// Score accumulates points and per-tier defeat counters. Values only grow
// within a session; Reset is the single way back to zero.
type Score struct {
	total            int
	enemiesDefeated  int
	defeatsByTier    map[defs.ScoreTier]int
}

// NewScore builds a zero score.
func NewScore() *Score {
	return &Score{defeatsByTier: make(map[defs.ScoreTier]int)}
}

// AddDefeat awards the tier's points for one defeated enemy.
func (s *Score) AddDefeat(tier defs.ScoreTier) {
	s.total += tier.Points()
	s.enemiesDefeated++
	s.defeatsByTier[tier]++
}

// Total returns the accumulated points.
func (s *Score) Total() int {
	return s.total
}

// EnemiesDefeated returns the number of defeats recorded.
func (s *Score) EnemiesDefeated() int {
	return s.enemiesDefeated
}

// DefeatsForTier returns the defeat count for one tier.
func (s *Score) DefeatsForTier(tier defs.ScoreTier) int {
	return s.defeatsByTier[tier]
}

// Reset returns the score to zero.
func (s *Score) Reset() {
	s.total = 0
	s.enemiesDefeated = 0
	s.defeatsByTier = make(map[defs.ScoreTier]int)
}
