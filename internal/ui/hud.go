// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-card-defense/internal/app"
)

// HUD draws the top status strip: base health, mana, score, wave and the
// remaining time from the latest snapshot.
type HUD struct {
	X, Y float32
}

func NewHUD() *HUD {
	return &HUD{X: 10, Y: 10}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	face := basicfont.Face7x13
	white := color.RGBA{230, 230, 230, 255}

	vector.DrawFilledRect(screen, h.X, h.Y, 420, 88, color.RGBA{25, 25, 35, 220}, false)

	// Health bar.
	healthFrac := float32(snap.Session.HealthPercentage / 100)
	vector.DrawFilledRect(screen, h.X+10, h.Y+12, 180, 14, color.RGBA{60, 20, 20, 255}, false)
	vector.DrawFilledRect(screen, h.X+10, h.Y+12, 180*healthFrac, 14, color.RGBA{190, 50, 50, 255}, false)
	text.Draw(screen, fmt.Sprintf("HP %d", snap.Session.CurrentHealth), face, int(h.X)+200, int(h.Y)+24, white)

	// Mana bar.
	manaFrac := float32(0)
	if snap.ManaMax > 0 {
		manaFrac = float32(snap.ManaCurrent) / float32(snap.ManaMax)
	}
	vector.DrawFilledRect(screen, h.X+10, h.Y+34, 180, 14, color.RGBA{20, 20, 60, 255}, false)
	vector.DrawFilledRect(screen, h.X+10, h.Y+34, 180*manaFrac, 14, color.RGBA{60, 90, 220, 255}, false)
	text.Draw(screen, fmt.Sprintf("MANA %d/%d", snap.ManaCurrent, snap.ManaMax), face, int(h.X)+200, int(h.Y)+46, white)

	line := fmt.Sprintf("SCORE %d   WAVE %d   TIME %ds   CARDS %d",
		snap.Session.CurrentScore, snap.Wave, snap.Session.RemainingTime, snap.Discovered)
	text.Draw(screen, line, face, int(h.X)+10, int(h.Y)+72, white)
}
