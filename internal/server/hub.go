// internal/server/hub.go
package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"go-card-defense/internal/app"
	"go-card-defense/internal/event"
	"go-card-defense/pkg/geom"
)

// relayedEvents are forwarded to every subscriber as "event" frames.
var relayedEvents = []event.EventType{
	event.GameStarted, event.GamePaused, event.GameResumed,
	event.GameCompleted, event.GameOver, event.GameEnded,
	event.ScoreUpdated, event.HealthUpdated, event.ManaUpdated,
	event.CardPlayed, event.TowerPlaced,
	event.EnemySpawned, event.EnemyDestroyed, event.EnemyReachedBase,
	event.WaveStarted,
}

const (
	writeWait     = 10 * time.Second
	sendQueueSize = 64
)

// Hub owns the single game instance and fans its state out to websocket
// subscribers. The game is not safe for concurrent use, so ticks and
// commands both run under the hub mutex.
type Hub struct {
	mu     sync.Mutex // guards game
	game   *app.Game
	logger *slog.Logger
	tick   time.Duration

	subsMu sync.Mutex // guards subs; events relay while mu is held
	subs   map[*subscriber]struct{}
}

func NewHub(game *app.Game, snapshotRateHz int, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	if snapshotRateHz <= 0 {
		snapshotRateHz = 15
	}
	h := &Hub{
		game:   game,
		logger: logger,
		subs:   make(map[*subscriber]struct{}),
		tick:   time.Second / time.Duration(snapshotRateHz),
	}
	relay := event.ListenerFunc(h.relayEvent)
	for _, eventType := range relayedEvents {
		game.Dispatcher().Subscribe(eventType, relay)
	}
	return h
}

// Run drives the simulation at the snapshot rate until ctx is cancelled.
// Each tick advances the game by the real elapsed time and broadcasts a
// fresh snapshot.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			deltaMs := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now

			h.mu.Lock()
			h.game.Update(deltaMs)
			snap := h.game.Snapshot()
			h.mu.Unlock()

			data, err := marshalFrame(frameSnapshot, "", snap)
			if err != nil {
				h.logger.Error("marshal snapshot", "error", err)
				continue
			}
			h.broadcast(data)
		}
	}
}

// Execute runs one client command against the game and returns the frame to
// send back on the issuing connection.
func (h *Hub) Execute(cmd Command) []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch cmd.Type {
	case cmdStart:
		if err := h.game.Start(); err != nil {
			return errorFrame(err.Error())
		}
		return h.ackFrame()
	case cmdPause:
		if err := h.game.Pause(); err != nil {
			return errorFrame(err.Error())
		}
		return h.ackFrame()
	case cmdResume:
		if err := h.game.Resume(); err != nil {
			return errorFrame(err.Error())
		}
		return h.ackFrame()
	case cmdPlayCard:
		res, err := h.game.PlayCard(cmd.CardID, geom.Point{X: cmd.X, Y: cmd.Y})
		if err != nil {
			return errorFrame(err.Error())
		}
		data, err := marshalFrame(framePlayResult, "", res)
		if err != nil {
			return errorFrame(err.Error())
		}
		return data
	default:
		return errorFrame("unknown command: " + cmd.Type)
	}
}

func (h *Hub) ackFrame() []byte {
	data, err := marshalFrame(frameAck, "", h.game.Snapshot())
	if err != nil {
		return errorFrame(err.Error())
	}
	return data
}

// InitialFrame is the snapshot sent to a subscriber right after upgrade.
func (h *Hub) InitialFrame() ([]byte, error) {
	h.mu.Lock()
	snap := h.game.Snapshot()
	h.mu.Unlock()
	return marshalFrame(frameSnapshot, "", snap)
}

func (h *Hub) relayEvent(e event.Event) {
	data, err := marshalFrame(frameEvent, string(e.Type), e.Data)
	if err != nil {
		h.logger.Error("marshal event", "type", string(e.Type), "error", err)
		return
	}
	h.broadcast(data)
}

// broadcast queues data on every subscriber, dropping it for subscribers
// whose write queue is full.
func (h *Hub) broadcast(data []byte) {
	h.subsMu.Lock()
	defer h.subsMu.Unlock()
	for sub := range h.subs {
		select {
		case sub.send <- data:
		default:
		}
	}
}

func (h *Hub) subscribe(conn *websocket.Conn) *subscriber {
	sub := &subscriber{conn: conn, send: make(chan []byte, sendQueueSize)}
	h.subsMu.Lock()
	h.subs[sub] = struct{}{}
	h.subsMu.Unlock()
	go sub.writePump(h.logger)
	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.subsMu.Lock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.send)
	}
	h.subsMu.Unlock()
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

func (s *subscriber) writePump(logger *slog.Logger) {
	for data := range s.send {
		s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			logger.Debug("subscriber write", "error", err)
			s.conn.Close()
			return
		}
	}
	s.conn.Close()
}
