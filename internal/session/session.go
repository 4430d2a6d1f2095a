// internal/session/session.go
package session

import (
	"errors"
	"fmt"
	"math/rand"

	"go-card-defense/internal/card"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/gametime"
	"go-card-defense/internal/health"
)

var (
	ErrEmptyID              = errors.New("session: id must not be empty")
	ErrAlreadyActive        = errors.New("session: game already active")
	ErrNotActive            = errors.New("session: game not active")
	ErrInvalidTransition    = errors.New("session: invalid state transition")
	ErrInsufficientCardPool = errors.New("session: card pool cannot deal a full hand")
	ErrCardNotInHand        = errors.New("session: card not in hand")
)

// Settings are the plain numeric knobs a session consumes. Values only, no
// behavior.
type Settings struct {
	HandCapacity    int
	BaseMaxHealth   int
	GameDurationSec int64
}

// Session is the aggregate root of one game: it owns the hand, library,
// timer, base health, and score, and enforces the state machine over every
// gameplay mutation. It is free of side effects (no events, no persistence);
// the orchestrating layer handles both after a mutation returns.
type Session struct {
	id       string
	pool     *card.Pool // shared, read-only
	library  *card.Library
	hand     *card.Hand
	timer    *gametime.Timer
	base     *health.BaseHealth
	score    *Score
	state    GameState
	clock    gametime.Clock
	rng      *rand.Rand

	startedAt   int64
	endedAt     int64
	endReason   EndReason
	cardsPlayed int
}

// NewSession builds a session in the NotStarted state.
func NewSession(id string, pool *card.Pool, settings Settings, clock gametime.Clock, rng *rand.Rand) (*Session, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	timer, err := gametime.NewTimer(settings.GameDurationSec, clock)
	if err != nil {
		return nil, fmt.Errorf("session timer: %w", err)
	}
	base, err := health.NewBaseHealth(settings.BaseMaxHealth)
	if err != nil {
		return nil, fmt.Errorf("session base health: %w", err)
	}
	return &Session{
		id:      id,
		pool:    pool,
		library: card.NewLibrary(),
		hand:    card.NewHand(settings.HandCapacity),
		timer:   timer,
		base:    base,
		score:   NewScore(),
		state:   StateNotStarted,
		clock:   clock,
		rng:     rng,
	}, nil
}

func (s *Session) ID() string                 { return s.id }
func (s *Session) State() GameState           { return s.state }
func (s *Session) Hand() *card.Hand           { return s.hand }
func (s *Session) Library() *card.Library     { return s.library }
func (s *Session) Pool() *card.Pool           { return s.pool }
func (s *Session) Timer() *gametime.Timer     { return s.timer }
func (s *Session) Base() *health.BaseHealth   { return s.base }
func (s *Session) Score() *Score              { return s.score }
func (s *Session) StartedAt() int64           { return s.startedAt }
func (s *Session) EndedAt() int64             { return s.endedAt }
func (s *Session) EndReason() EndReason       { return s.endReason }
func (s *Session) CardsPlayed() int           { return s.cardsPlayed }

// IsActive reports whether gameplay bookkeeping is accepted.
func (s *Session) IsActive() bool {
	return s.state.IsActive()
}

// IsGameOver reports whether the session reached a terminal state.
func (s *Session) IsGameOver() bool {
	return s.state.IsTerminal()
}

// StartGame validates the pool can deal a full hand, deals it, resets base
// health, starts the timer, and moves to Running. The pool check happens
// before any mutation so a too-small pool leaves the session untouched.
func (s *Session) StartGame() error {
	if s.state.IsActive() {
		return ErrAlreadyActive
	}
	if !s.state.CanTransitionTo(StateRunning) {
		return ErrInvalidTransition
	}
	if !s.pool.CanDeal(s.hand.Capacity()) {
		return ErrInsufficientCardPool
	}
	dealt, err := s.pool.Draw(s.hand.Capacity(), s.rng)
	if err != nil {
		return fmt.Errorf("deal hand: %w", err)
	}
	for _, c := range dealt {
		if err := s.hand.Add(c); err != nil {
			return fmt.Errorf("deal hand: %w", err)
		}
	}
	s.base.Reset()
	if err := s.timer.Start(); err != nil {
		return fmt.Errorf("start timer: %w", err)
	}
	s.state = StateRunning
	s.startedAt = s.clock.NowMillis()
	return nil
}

// PlayCard removes the card from the hand, records its discovery, and
// increments the played counter. Mana is not deducted here; the caller
// settles the cost through the mana consumption service before invoking
// PlayCard, which keeps the aggregate composable.
func (s *Session) PlayCard(cardID string) (card.Card, error) {
	if s.state != StateRunning {
		return card.Card{}, ErrNotActive
	}
	played, err := s.hand.Remove(cardID)
	if err != nil {
		return card.Card{}, ErrCardNotInHand
	}
	s.library.Discover(played.ID(), s.clock.NowMillis())
	s.cardsPlayed++
	return played, nil
}

// Pause suspends the session and freezes the timer.
func (s *Session) Pause() error {
	if s.state != StateRunning {
		return ErrInvalidTransition
	}
	if err := s.timer.Pause(); err != nil {
		return fmt.Errorf("pause timer: %w", err)
	}
	s.state = StatePaused
	return nil
}

// Resume continues a paused session.
func (s *Session) Resume() error {
	if s.state != StatePaused {
		return ErrInvalidTransition
	}
	if err := s.timer.Resume(); err != nil {
		return fmt.Errorf("resume timer: %w", err)
	}
	s.state = StateRunning
	return nil
}

// HandleEnemyDefeated adds score for a defeated enemy. Outside an active
// session this is a silent no-op: a late tick after the terminal
// transition must not corrupt the final score.
func (s *Session) HandleEnemyDefeated(enemyType defs.EnemyType) {
	if !s.state.IsActive() {
		return
	}
	s.score.AddDefeat(enemyType.Stats().Tier)
}

// HandleBaseDamaged applies damage to the base and evaluates end conditions.
// Outside an active session it is a silent no-op, like HandleEnemyDefeated.
func (s *Session) HandleBaseDamaged(amount int) {
	if !s.state.IsActive() {
		return
	}
	s.base.Damage(amount)
	s.EvaluateEndConditions()
}

// EvaluateEndConditions checks the terminal predicates and, if one holds,
// ends the session with that reason. Returns the reason applied, if any.
func (s *Session) EvaluateEndConditions() (EndReason, bool) {
	reason, ended := CheckEndCondition(s.timer, s.base, s.state)
	if !ended {
		return ReasonNone, false
	}
	if err := s.EndGame(reason); err != nil {
		return ReasonNone, false
	}
	return reason, true
}

// EndGame terminates an active session. Remaining hand cards are folded into
// the library as discovered. A player-death reason ends in GameOver; time-up
// or no reason ends in Completed.
func (s *Session) EndGame(reason EndReason) error {
	if !s.state.IsActive() {
		return ErrNotActive
	}
	now := s.clock.NowMillis()
	for _, c := range s.hand.Clear() {
		s.library.Discover(c.ID(), now)
	}
	s.timer.Stop()
	if reason == ReasonPlayerDeath {
		s.state = StateGameOver
	} else {
		s.state = StateCompleted
	}
	s.endReason = reason
	s.endedAt = now
	return nil
}

// Stats is the read-only projection surfaced to the presentation layer.
type Stats struct {
	SessionID        string  `json:"sessionId"`
	CardsPlayed      int     `json:"cardsPlayed"`
	CardsInHand      int     `json:"cardsInHand"`
	IsActive         bool    `json:"isActive"`
	CurrentScore     int     `json:"currentScore"`
	EnemiesDefeated  int     `json:"enemiesDefeated"`
	CurrentHealth    int     `json:"currentHealth"`
	HealthPercentage float64 `json:"healthPercentage"`
	RemainingTime    int64   `json:"remainingTime"`
	GameState        string  `json:"gameState"`
	EndReason        string  `json:"endReason,omitempty"`
}

// Stats returns the session's current projection.
func (s *Session) Stats() Stats {
	return Stats{
		SessionID:        s.id,
		CardsPlayed:      s.cardsPlayed,
		CardsInHand:      s.hand.Size(),
		IsActive:         s.state.IsActive(),
		CurrentScore:     s.score.Total(),
		EnemiesDefeated:  s.score.EnemiesDefeated(),
		CurrentHealth:    s.base.Current(),
		HealthPercentage: s.base.Percentage(),
		RemainingTime:    s.timer.RemainingSeconds(),
		GameState:        s.state.String(),
		EndReason:        string(s.endReason),
	}
}
