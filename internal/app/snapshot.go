// internal/app/snapshot.go
package app

import (
	"go-card-defense/internal/session"
	"go-card-defense/pkg/geom"
)

// EnemyView is the wire projection of one live enemy.
type EnemyView struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Position      geom.Point `json:"position"`
	PathProgress  float64    `json:"pathProgress"`
	CurrentHealth int        `json:"currentHealth"`
	MaxHealth     int        `json:"maxHealth"`
}

// TowerView is the wire projection of one placed tower.
type TowerView struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"`
	Position geom.Point `json:"position"`
	Range    float64    `json:"range"`
}

// CardView is the wire projection of one card in hand.
type CardView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Cost      int    `json:"cost"`
	TowerType string `json:"towerType"`
}

// Snapshot is the full observable state of a game at one instant. It is
// what the server broadcasts and the debug client draws.
type Snapshot struct {
	Session     session.Stats `json:"session"`
	ManaCurrent int           `json:"manaCurrent"`
	ManaMax     int           `json:"manaMax"`
	Wave        int           `json:"wave"`
	Hand        []CardView    `json:"hand"`
	Enemies     []EnemyView   `json:"enemies"`
	Towers      []TowerView   `json:"towers"`
	Path        []geom.Point  `json:"path"`
	Discovered  int           `json:"discovered"`
}

// Snapshot captures the current state. The result shares nothing with the
// live simulation and is safe to serialize from another goroutine once
// returned.
func (g *Game) Snapshot() Snapshot {
	hand := g.session.Hand().Cards()
	handViews := make([]CardView, 0, len(hand))
	for _, c := range hand {
		handViews = append(handViews, CardView{
			ID:        c.ID(),
			Name:      c.Name(),
			Cost:      c.Cost(),
			TowerType: c.TowerType().String(),
		})
	}
	enemyViews := make([]EnemyView, 0, len(g.enemies))
	for _, e := range g.enemies {
		if !e.IsAlive() {
			continue
		}
		enemyViews = append(enemyViews, EnemyView{
			ID:            e.ID(),
			Type:          e.Type().String(),
			Position:      e.Position(),
			PathProgress:  e.PathProgress(),
			CurrentHealth: e.CurrentHealth(),
			MaxHealth:     e.MaxHealth(),
		})
	}
	towerViews := make([]TowerView, 0, len(g.towers))
	for _, t := range g.towers {
		towerViews = append(towerViews, TowerView{
			ID:       t.ID(),
			Type:     t.Type().String(),
			Position: t.Position(),
			Range:    t.Stats().Range,
		})
	}
	return Snapshot{
		Session:     g.session.Stats(),
		ManaCurrent: g.manaPool.Current(),
		ManaMax:     g.manaPool.Max(),
		Wave:        g.waves.CurrentWave(),
		Hand:        handViews,
		Enemies:     enemyViews,
		Towers:      towerViews,
		Path:        g.path.Waypoints(),
		Discovered:  g.session.Library().Size(),
	}
}
