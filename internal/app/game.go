// internal/app/game.go
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"go-card-defense/internal/card"
	"go-card-defense/internal/config"
	"go-card-defense/internal/defs"
	"go-card-defense/internal/event"
	"go-card-defense/internal/gametime"
	"go-card-defense/internal/mana"
	"go-card-defense/internal/session"
	"go-card-defense/internal/storage"
	"go-card-defense/internal/system"
	"go-card-defense/internal/unit"
	"go-card-defense/pkg/geom"
)

var (
	ErrNotRunning       = errors.New("app: game is not running")
	ErrInvalidPlacement = errors.New("app: invalid tower placement")
)

// PlayCardResult reports the outcome of a card play. A mana shortage is an
// outcome, not an error: Played is false and Shortage carries the deficit.
type PlayCardResult struct {
	Played   bool   `json:"played"`
	Shortage int    `json:"shortage,omitempty"`
	TowerID  string `json:"towerId,omitempty"`
}

// Game wires the session aggregate, the unit roster and the combat services
// into one simulation and drives them from a single Update loop. All event
// publication happens here; the aggregates below stay side-effect free.
type Game struct {
	cfg        config.Config
	logger     *slog.Logger
	clock      gametime.Clock
	rng        *rand.Rand
	dispatcher *event.Dispatcher
	store      storage.LibraryStore

	path     *geom.MovementPath
	session  *session.Session
	manaPool *mana.Pool
	manaSvc  *mana.ConsumptionService
	movement *system.MovementService
	damage   *system.DamageService
	waves    *waveScheduler

	enemies []*unit.Enemy
	towers  []*unit.Tower

	regenCarry   float64
	endPublished bool
}

// NewGame builds a ready-to-start game from config. The store is consulted
// once for previously discovered cards; later discoveries are persisted
// best-effort as they happen.
func NewGame(cfg config.Config, clock gametime.Clock, store storage.LibraryStore, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	catalog := defs.DefaultCardSet()
	if cfg.CatalogPath != "" {
		loaded, err := defs.LoadCardDefinitions(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load card catalog: %w", err)
		}
		catalog = loaded
	}
	cards := make([]card.Card, 0, len(catalog))
	for _, def := range catalog {
		c, err := card.FromDefinition(def)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", def.ID, err)
		}
		cards = append(cards, c)
	}

	path, err := geom.NewMovementPath(cfg.PathWaypoints)
	if err != nil {
		return nil, fmt.Errorf("movement path: %w", err)
	}

	rng := rand.New(rand.NewSource(clock.NowMillis()))
	sessionID := uuid.NewString()
	sess, err := session.NewSession(sessionID, card.NewPool(cards), session.Settings{
		HandCapacity:    cfg.HandCapacity,
		BaseMaxHealth:   cfg.BaseMaxHealth,
		GameDurationSec: cfg.GameDurationSec,
	}, clock, rng)
	if err != nil {
		return nil, err
	}

	if store != nil {
		persisted, err := store.LoadLibrary(context.Background())
		if err != nil {
			logger.Warn("load card library", "error", err)
		} else {
			for _, d := range persisted.Discoveries() {
				sess.Library().Restore(d)
			}
		}
	}

	manaPool, err := mana.NewPool(sessionID, cfg.ManaInitial, cfg.ManaMax)
	if err != nil {
		return nil, err
	}
	damage := system.NewDamageService()
	if err := damage.SetMultiplier(cfg.DamageMultiplier); err != nil {
		return nil, err
	}

	return &Game{
		cfg:        cfg,
		logger:     logger,
		clock:      clock,
		rng:        rng,
		dispatcher: event.NewDispatcher(),
		store:      store,
		path:       path,
		session:    sess,
		manaPool:   manaPool,
		manaSvc:    mana.NewConsumptionService(),
		movement:   system.NewMovementService(cfg.MaxEnemyUpdatesPerTick),
		damage:     damage,
		waves:      newWaveScheduler(defs.DefaultWaves, rng),
	}, nil
}

func (g *Game) Session() *session.Session     { return g.session }
func (g *Game) ManaPool() *mana.Pool          { return g.manaPool }
func (g *Game) Dispatcher() *event.Dispatcher { return g.dispatcher }
func (g *Game) Path() *geom.MovementPath      { return g.path }
func (g *Game) CurrentWave() int              { return g.waves.CurrentWave() }

// Enemies returns a copy of the live roster.
func (g *Game) Enemies() []*unit.Enemy {
	out := make([]*unit.Enemy, len(g.enemies))
	copy(out, g.enemies)
	return out
}

// Towers returns a copy of the tower roster.
func (g *Game) Towers() []*unit.Tower {
	out := make([]*unit.Tower, len(g.towers))
	copy(out, g.towers)
	return out
}

// Start deals the opening hand and begins the timer and the first wave.
func (g *Game) Start() error {
	if err := g.session.StartGame(); err != nil {
		return err
	}
	g.waves.reset()
	g.enemies = g.enemies[:0]
	g.towers = g.towers[:0]
	g.regenCarry = 0
	g.endPublished = false
	g.dispatcher.Dispatch(event.Event{Type: event.GameStarted, Data: g.session.Stats()})
	g.publishMana()
	g.logger.Info("game started",
		"session", g.session.ID(),
		"hand", g.session.Hand().Size(),
		"duration_sec", g.cfg.GameDurationSec)
	return nil
}

// Pause suspends the simulation; Update becomes a no-op until Resume.
func (g *Game) Pause() error {
	if err := g.session.Pause(); err != nil {
		return err
	}
	g.dispatcher.Dispatch(event.Event{Type: event.GamePaused, Data: g.session.Stats()})
	return nil
}

// Resume continues a paused game.
func (g *Game) Resume() error {
	if err := g.session.Resume(); err != nil {
		return err
	}
	g.dispatcher.Dispatch(event.Event{Type: event.GameResumed, Data: g.session.Stats()})
	return nil
}

// PlayCard spends mana for the named card and places its tower at position.
// The position must keep clearance from the enemy path but stay within
// range of it. Mana is deducted before the card leaves the hand; a shortage
// leaves both hand and pool untouched.
func (g *Game) PlayCard(cardID string, position geom.Point) (PlayCardResult, error) {
	if g.session.State() != session.StateRunning {
		return PlayCardResult{}, ErrNotRunning
	}
	c, err := g.session.Hand().Get(cardID)
	if err != nil {
		return PlayCardResult{}, err
	}
	dist := g.path.DistanceTo(position)
	if dist < g.cfg.TowerClearance || dist > g.cfg.TowerMaxDistance {
		return PlayCardResult{}, fmt.Errorf("%w: %.0fpx from path", ErrInvalidPlacement, dist)
	}

	now := g.clock.NowMillis()
	res, err := g.manaSvc.Consume(g.manaPool, c.Cost(), "play "+cardID, now)
	if err != nil {
		return PlayCardResult{}, err
	}
	if !res.Consumed {
		g.logger.Debug("mana shortage", "card", cardID, "shortage", res.Shortage)
		return PlayCardResult{Shortage: res.Shortage}, nil
	}

	played, err := g.session.PlayCard(cardID)
	if err != nil {
		// The hand was checked above, so this is unexpected. Refund.
		if _, rerr := g.manaPool.Generate(c.Cost(), "refund "+cardID, now); rerr != nil {
			g.logger.Warn("refund after failed play", "card", cardID, "error", rerr)
		}
		return PlayCardResult{}, err
	}

	tower := unit.NewTower(uuid.NewString(), played.TowerType(), position)
	g.towers = append(g.towers, tower)
	g.persistDiscovery(played.ID())

	g.dispatcher.Dispatch(event.Event{Type: event.CardPlayed, Data: event.CardPlayedEvent{
		SessionID: g.session.ID(),
		CardID:    played.ID(),
		CardName:  played.Name(),
		ManaSpent: played.Cost(),
	}})
	g.dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerPlacedEvent{
		SessionID: g.session.ID(),
		TowerID:   tower.ID(),
		TowerType: tower.Type().String(),
		Position:  tower.Position(),
	}})
	g.publishMana()
	g.logger.Info("card played", "card", played.ID(), "tower", tower.Type().String(), "mana_left", g.manaPool.Current())
	return PlayCardResult{Played: true, TowerID: tower.ID()}, nil
}

// Update advances the simulation by deltaMs of game time. Tick order: end
// conditions, mana regeneration, wave spawning, enemy movement, tower
// combat, base damage from arrivals, end conditions again.
func (g *Game) Update(deltaMs float64) {
	if deltaMs <= 0 || g.session.State() != session.StateRunning {
		g.checkEnded()
		return
	}
	if g.checkEnded() {
		return
	}
	g.regenMana(deltaMs)
	g.advanceWaves(deltaMs)
	arrived := g.movement.MoveAll(g.enemies, deltaMs)
	g.resolveTowerAttacks()
	g.resolveArrivals(arrived)
	g.pruneEnemies()
	g.checkEnded()
}

func (g *Game) regenMana(deltaMs float64) {
	g.regenCarry += deltaMs
	interval := float64(g.cfg.ManaRegenMs)
	credited := 0
	for g.regenCarry >= interval {
		g.regenCarry -= interval
		n, err := g.manaPool.Generate(g.cfg.ManaRegenAmount, "regen", g.clock.NowMillis())
		if err != nil {
			g.logger.Warn("mana regen", "error", err)
			break
		}
		credited += n
	}
	if credited > 0 {
		g.publishMana()
	}
}

func (g *Game) advanceWaves(deltaMs float64) {
	spawns, started := g.waves.Advance(deltaMs)
	if started != nil {
		g.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveStartedEvent{
			SessionID: g.session.ID(),
			Wave:      g.waves.CurrentWave(),
			Count:     started.Count,
		}})
		g.logger.Info("wave started", "wave", g.waves.CurrentWave(), "count", started.Count)
	}
	for _, enemyType := range spawns {
		enemy := unit.NewEnemy(uuid.NewString(), enemyType, g.path, g.clock.NowMillis())
		g.enemies = append(g.enemies, enemy)
		g.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemySpawnedEvent{
			SessionID: g.session.ID(),
			EnemyID:   enemy.ID(),
			EnemyType: enemy.Type().String(),
			Wave:      g.waves.CurrentWave(),
		}})
	}
}

func (g *Game) resolveTowerAttacks() {
	now := g.clock.NowMillis()
	for _, tower := range g.towers {
		report := tower.Update(g.enemies, now)
		if !report.Attacked {
			continue
		}
		if report.Target != nil && !report.Target.IsAlive() {
			g.handleDefeat(report.Target)
		}
		if splash := tower.Stats().SplashRadius; splash > 0 && report.Target != nil {
			others := make([]*unit.Enemy, 0, len(g.enemies))
			for _, e := range g.enemies {
				if e != report.Target {
					others = append(others, e)
				}
			}
			for _, killed := range g.damage.ApplyArea(others, report.Target.Position(), splash, report.Damage/2) {
				g.handleDefeat(killed)
			}
		}
	}
}

func (g *Game) handleDefeat(enemy *unit.Enemy) {
	g.session.HandleEnemyDefeated(enemy.Type())
	g.movement.Forget(enemy.ID())
	g.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyDestroyedEvent{
		SessionID: g.session.ID(),
		EnemyID:   enemy.ID(),
		EnemyType: enemy.Type().String(),
	}})
	g.dispatcher.Dispatch(event.Event{Type: event.ScoreUpdated, Data: event.ScoreUpdatedEvent{
		SessionID:       g.session.ID(),
		Total:           g.session.Score().Total(),
		EnemiesDefeated: g.session.Score().EnemiesDefeated(),
		EnemyType:       enemy.Type(),
	}})
}

func (g *Game) resolveArrivals(arrived []*unit.Enemy) {
	for _, enemy := range arrived {
		damage := enemy.AttackBase()
		enemy.Destroy()
		g.movement.Forget(enemy.ID())
		g.session.HandleBaseDamaged(damage)
		g.dispatcher.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: event.EnemyReachedBaseEvent{
			SessionID: g.session.ID(),
			EnemyID:   enemy.ID(),
			Damage:    damage,
		}})
		g.dispatcher.Dispatch(event.Event{Type: event.HealthUpdated, Data: event.HealthUpdatedEvent{
			SessionID:  g.session.ID(),
			Current:    g.session.Base().Current(),
			Max:        g.session.Base().MaxHealth(),
			Percentage: g.session.Base().Percentage(),
		}})
		if g.checkEnded() {
			return
		}
	}
}

func (g *Game) pruneEnemies() {
	alive := g.enemies[:0]
	for _, e := range g.enemies {
		if e.IsAlive() {
			alive = append(alive, e)
		}
	}
	g.enemies = alive
}

// checkEnded evaluates end conditions and, on the first terminal
// transition, publishes the end events and saves the library.
func (g *Game) checkEnded() bool {
	if g.session.State().IsActive() {
		g.session.EvaluateEndConditions()
	}
	if !g.session.State().IsTerminal() {
		return false
	}
	if g.endPublished {
		return true
	}
	g.endPublished = true

	outcome := event.GameCompleted
	if g.session.State() == session.StateGameOver {
		outcome = event.GameOver
	}
	ended := event.GameEndedEvent{
		SessionID: g.session.ID(),
		Reason:    string(g.session.EndReason()),
		State:     g.session.State().String(),
		Score:     g.session.Score().Total(),
		EndedAt:   g.session.EndedAt(),
	}
	g.dispatcher.Dispatch(event.Event{Type: outcome, Data: ended})
	g.dispatcher.Dispatch(event.Event{Type: event.GameEnded, Data: ended})
	g.saveLibrary()
	g.logger.Info("game ended",
		"session", g.session.ID(),
		"state", g.session.State().String(),
		"reason", string(g.session.EndReason()),
		"score", g.session.Score().Total())
	return true
}

func (g *Game) publishMana() {
	g.dispatcher.Dispatch(event.Event{Type: event.ManaUpdated, Data: event.ManaUpdatedEvent{
		SessionID: g.session.ID(),
		Current:   g.manaPool.Current(),
		Max:       g.manaPool.Max(),
	}})
}

func (g *Game) persistDiscovery(cardID string) {
	if g.store == nil {
		return
	}
	ts, ok := g.session.Library().DiscoveredAt(cardID)
	if !ok {
		return
	}
	if err := g.store.SaveDiscovery(context.Background(), card.Discovery{CardID: cardID, DiscoveredAt: ts}); err != nil {
		g.logger.Warn("persist discovery", "card", cardID, "error", err)
	}
}

func (g *Game) saveLibrary() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveLibrary(context.Background(), g.session.Library()); err != nil {
		g.logger.Warn("save card library", "error", err)
	}
}
