// internal/config/config.go
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"go-card-defense/pkg/geom"
)

// Rendering constants for the debug client. The simulation core never reads
// these.
const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06 // seconds; clamp for frame spikes
)

var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full settings surface the game consumes: plain values, no
// behavior, constructed explicitly and passed into sessions and services.
// There is deliberately no global instance.
type Config struct {
	HandCapacity    int   `env:"HAND_CAPACITY"`
	ManaInitial     int   `env:"MANA_INITIAL"`
	ManaMax         int   `env:"MANA_MAX"`
	ManaRegenAmount int   `env:"MANA_REGEN_AMOUNT"`
	ManaRegenMs     int64 `env:"MANA_REGEN_MS"`
	BaseMaxHealth   int   `env:"BASE_MAX_HEALTH"`
	GameDurationSec int64 `env:"GAME_DURATION_SEC"`

	// MaxEnemyUpdatesPerTick caps movement work per frame; 0 is unlimited.
	MaxEnemyUpdatesPerTick int `env:"MAX_ENEMY_UPDATES_PER_TICK"`

	// DamageMultiplier scales all tower damage; difficulty knob.
	DamageMultiplier float64 `env:"DAMAGE_MULTIPLIER"`

	// TowerClearance is the minimum distance from the path a tower must
	// keep, and also the maximum distance at which placement still counts
	// as defending the path.
	TowerClearance   float64 `env:"TOWER_CLEARANCE"`
	TowerMaxDistance float64 `env:"TOWER_MAX_DISTANCE"`

	// CatalogPath optionally replaces the built-in card catalog.
	CatalogPath string `env:"CATALOG_PATH"`

	// LibraryPath is the SQLite card-discovery ledger; empty keeps the
	// ledger in memory only.
	LibraryPath string `env:"LIBRARY_PATH"`

	// ListenAddr is the websocket server bind address.
	ListenAddr string `env:"LISTEN_ADDR"`

	// SnapshotRateHz is how often the server pushes state frames.
	SnapshotRateHz int `env:"SNAPSHOT_RATE_HZ"`

	// PathWaypoints is the enemy route. Not env-configurable; callers that
	// need a custom route set it directly.
	PathWaypoints []geom.Point `env:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		HandCapacity:           8,
		ManaInitial:            5,
		ManaMax:                10,
		ManaRegenAmount:        1,
		ManaRegenMs:            2000,
		BaseMaxHealth:          100,
		GameDurationSec:        180,
		MaxEnemyUpdatesPerTick: 0,
		DamageMultiplier:       1.0,
		TowerClearance:         30,
		TowerMaxDistance:       220,
		ListenAddr:             ":8080",
		SnapshotRateHz:         15,
		PathWaypoints: []geom.Point{
			{X: 0, Y: 450}, {X: 300, Y: 450}, {X: 300, Y: 200},
			{X: 700, Y: 200}, {X: 700, Y: 650}, {X: 1100, Y: 650},
		},
	}
}

// FromEnv returns the default configuration with CARDDEF_-prefixed
// environment overrides applied and validated.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "CARDDEF_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run on.
func (c Config) Validate() error {
	if c.HandCapacity <= 0 {
		return fmt.Errorf("%w: hand capacity %d", ErrInvalidConfig, c.HandCapacity)
	}
	if c.ManaMax <= 0 || c.ManaInitial < 0 || c.ManaInitial > c.ManaMax {
		return fmt.Errorf("%w: mana initial %d / max %d", ErrInvalidConfig, c.ManaInitial, c.ManaMax)
	}
	if c.ManaRegenAmount < 0 || c.ManaRegenMs <= 0 {
		return fmt.Errorf("%w: mana regen %d per %dms", ErrInvalidConfig, c.ManaRegenAmount, c.ManaRegenMs)
	}
	if c.BaseMaxHealth <= 0 {
		return fmt.Errorf("%w: base max health %d", ErrInvalidConfig, c.BaseMaxHealth)
	}
	if c.GameDurationSec < 0 {
		return fmt.Errorf("%w: game duration %ds", ErrInvalidConfig, c.GameDurationSec)
	}
	if c.DamageMultiplier < 0 {
		return fmt.Errorf("%w: damage multiplier %f", ErrInvalidConfig, c.DamageMultiplier)
	}
	if len(c.PathWaypoints) < 2 {
		return fmt.Errorf("%w: path needs at least 2 waypoints", ErrInvalidConfig)
	}
	if c.SnapshotRateHz <= 0 {
		return fmt.Errorf("%w: snapshot rate %d", ErrInvalidConfig, c.SnapshotRateHz)
	}
	return nil
}
