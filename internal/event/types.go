// internal/event/types.go
package event

import (
	"go-card-defense/internal/defs"
	"go-card-defense/pkg/geom"
)

const (
	GameStarted    EventType = "GameStarted"
	GamePaused     EventType = "GamePaused"
	GameResumed    EventType = "GameResumed"
	GameCompleted  EventType = "GameCompleted"
	GameOver       EventType = "GameOver"
	GameEnded      EventType = "GameEnded" // always follows GameCompleted or GameOver
	ScoreUpdated   EventType = "ScoreUpdated"
	HealthUpdated  EventType = "HealthUpdated"
	ManaUpdated    EventType = "ManaUpdated"
	CardPlayed     EventType = "CardPlayed"
	TowerPlaced    EventType = "TowerPlaced"
	EnemySpawned   EventType = "EnemySpawned"
	EnemyDestroyed EventType = "EnemyDestroyed"
	EnemyReachedBase EventType = "EnemyReachedBase"
	WaveStarted    EventType = "WaveStarted"
)

// ScoreUpdatedEvent reports the score after a defeat was recorded.
type ScoreUpdatedEvent struct {
	SessionID       string         `json:"sessionId"`
	Total           int            `json:"total"`
	EnemiesDefeated int            `json:"enemiesDefeated"`
	EnemyType       defs.EnemyType `json:"-"`
}

// HealthUpdatedEvent reports base health after damage or healing.
type HealthUpdatedEvent struct {
	SessionID  string  `json:"sessionId"`
	Current    int     `json:"current"`
	Max        int     `json:"max"`
	Percentage float64 `json:"percentage"`
}

// ManaUpdatedEvent reports the pool after generation or consumption.
type ManaUpdatedEvent struct {
	SessionID string `json:"sessionId"`
	Current   int    `json:"current"`
	Max       int    `json:"max"`
}

// GameEndedEvent reports the terminal outcome of a session.
type GameEndedEvent struct {
	SessionID string `json:"sessionId"`
	Reason    string `json:"reason"`
	State     string `json:"state"`
	Score     int    `json:"score"`
	EndedAt   int64  `json:"endedAt"`
}

// CardPlayedEvent reports a successful card play.
type CardPlayedEvent struct {
	SessionID string `json:"sessionId"`
	CardID    string `json:"cardId"`
	CardName  string `json:"cardName"`
	ManaSpent int    `json:"manaSpent"`
}

// TowerPlacedEvent reports the tower built by a card play.
type TowerPlacedEvent struct {
	SessionID string     `json:"sessionId"`
	TowerID   string     `json:"towerId"`
	TowerType string     `json:"towerType"`
	Position  geom.Point `json:"position"`
}

// EnemySpawnedEvent reports a wave spawn.
type EnemySpawnedEvent struct {
	SessionID string `json:"sessionId"`
	EnemyID   string `json:"enemyId"`
	EnemyType string `json:"enemyType"`
	Wave      int    `json:"wave"`
}

// EnemyDestroyedEvent reports an enemy killed by tower fire.
type EnemyDestroyedEvent struct {
	SessionID string `json:"sessionId"`
	EnemyID   string `json:"enemyId"`
	EnemyType string `json:"enemyType"`
}

// EnemyReachedBaseEvent reports an enemy that finished its path.
type EnemyReachedBaseEvent struct {
	SessionID string `json:"sessionId"`
	EnemyID   string `json:"enemyId"`
	Damage    int    `json:"damage"`
}

// WaveStartedEvent reports the beginning of a wave.
type WaveStartedEvent struct {
	SessionID string `json:"sessionId"`
	Wave      int    `json:"wave"`
	Count     int    `json:"count"`
}
