// internal/ui/field.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-card-defense/internal/app"
)

var enemyColors = map[string]color.RGBA{
	"BASIC":    {200, 80, 80, 255},
	"FAST":     {230, 160, 60, 255},
	"RANGED":   {170, 90, 200, 255},
	"ENHANCED": {220, 60, 120, 255},
	"BOSS":     {255, 40, 40, 255},
}

var towerColors = map[string]color.RGBA{
	"ARCHER":    {110, 180, 110, 255},
	"CANNON":    {150, 150, 150, 255},
	"MAGIC":     {120, 110, 220, 255},
	"ICE":       {120, 200, 230, 255},
	"FIRE":      {230, 120, 60, 255},
	"LIGHTNING": {240, 230, 100, 255},
	"POISON":    {130, 200, 90, 255},
	"SUPPORT":   {200, 200, 220, 255},
}

// Field draws the battlefield: the enemy route, live enemies with health
// bars and the placed towers.
type Field struct{}

func NewField() *Field {
	return &Field{}
}

func (f *Field) Draw(screen *ebiten.Image, snap app.Snapshot, showRanges bool) {
	// Route.
	pathColor := color.RGBA{70, 70, 90, 255}
	for i := 1; i < len(snap.Path); i++ {
		a, b := snap.Path[i-1], snap.Path[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 24, pathColor, false)
	}
	if len(snap.Path) > 0 {
		last := snap.Path[len(snap.Path)-1]
		vector.DrawFilledCircle(screen, float32(last.X), float32(last.Y), 18, color.RGBA{80, 60, 160, 255}, false)
	}

	for _, tower := range snap.Towers {
		c, ok := towerColors[tower.Type]
		if !ok {
			c = color.RGBA{160, 160, 160, 255}
		}
		x, y := float32(tower.Position.X), float32(tower.Position.Y)
		if showRanges {
			vector.StrokeCircle(screen, x, y, float32(tower.Range), 1, color.RGBA{90, 90, 110, 120}, false)
		}
		vector.DrawFilledRect(screen, x-10, y-10, 20, 20, c, false)
	}

	for _, enemy := range snap.Enemies {
		c, ok := enemyColors[enemy.Type]
		if !ok {
			c = color.RGBA{200, 80, 80, 255}
		}
		x, y := float32(enemy.Position.X), float32(enemy.Position.Y)
		vector.DrawFilledCircle(screen, x, y, 9, c, false)

		if enemy.MaxHealth > 0 {
			frac := float32(enemy.CurrentHealth) / float32(enemy.MaxHealth)
			vector.DrawFilledRect(screen, x-10, y-16, 20, 3, color.RGBA{40, 40, 40, 255}, false)
			vector.DrawFilledRect(screen, x-10, y-16, 20*frac, 3, color.RGBA{90, 220, 90, 255}, false)
		}
	}
}
