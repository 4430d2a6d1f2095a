// internal/card/library.go
package card

import (
	"sort"

	"go-card-defense/internal/defs"
)

// Discovery records when a card id first became known to the player.
type Discovery struct {
	CardID       string
	DiscoveredAt int64 // milliseconds
}

// Library is the "cards ever seen" ledger. It only grows; re-discovering a
// card keeps the original timestamp.
type Library struct {
	discoveries map[string]int64
}

// NewLibrary builds an empty library.
func NewLibrary() *Library {
	return &Library{discoveries: make(map[string]int64)}
}

// Discover records a card id at the given timestamp. Idempotent: a card
// already known keeps its first-seen timestamp. Returns whether the card was
// newly discovered.
func (l *Library) Discover(cardID string, nowMillis int64) bool {
	if cardID == "" {
		return false
	}
	if _, known := l.discoveries[cardID]; known {
		return false
	}
	l.discoveries[cardID] = nowMillis
	return true
}

// Restore seeds the library with a persisted discovery, keeping the earlier
// timestamp if the id is already present.
func (l *Library) Restore(d Discovery) {
	if d.CardID == "" {
		return
	}
	if at, known := l.discoveries[d.CardID]; known && at <= d.DiscoveredAt {
		return
	}
	l.discoveries[d.CardID] = d.DiscoveredAt
}

// IsDiscovered reports whether the id has ever been seen.
func (l *Library) IsDiscovered(cardID string) bool {
	_, known := l.discoveries[cardID]
	return known
}

// DiscoveredAt returns the first-seen timestamp for an id.
func (l *Library) DiscoveredAt(cardID string) (int64, bool) {
	at, known := l.discoveries[cardID]
	return at, known
}

// Size returns the number of discovered cards.
func (l *Library) Size() int {
	return len(l.discoveries)
}

// Discoveries returns the ledger ordered by card id.
func (l *Library) Discoveries() []Discovery {
	out := make([]Discovery, 0, len(l.discoveries))
	for id, at := range l.discoveries {
		out = append(out, Discovery{CardID: id, DiscoveredAt: at})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CardID < out[j].CardID })
	return out
}

// DiscoveredByTowerType filters the discovered subset of pool against a
// tower kind.
func (l *Library) DiscoveredByTowerType(pool *Pool, towerType defs.TowerType) []Card {
	var out []Card
	for _, c := range pool.Cards() {
		if c.TowerType() == towerType && l.IsDiscovered(c.ID()) {
			out = append(out, c)
		}
	}
	return out
}

// DiscoveryRate returns the fraction of the pool that has been discovered,
// 0–100.
func (l *Library) DiscoveryRate(pool *Pool) float64 {
	if pool.Size() == 0 {
		return 0
	}
	discovered := 0
	for _, c := range pool.Cards() {
		if l.IsDiscovered(c.ID()) {
			discovered++
		}
	}
	return float64(discovered) / float64(pool.Size()) * 100
}

// Clear forgets every discovery. The only way the ledger shrinks.
func (l *Library) Clear() {
	l.discoveries = make(map[string]int64)
}
