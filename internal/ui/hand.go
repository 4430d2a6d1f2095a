// internal/ui/hand.go
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

const (
	cardWidth   = 120
	cardHeight  = 70
	cardSpacing = 8
)

// HandPanel lays the current hand out along the bottom edge and tracks
// which card the player has selected for placement.
type HandPanel struct {
	screenW  int
	screenH  int
	selected string
}

func NewHandPanel(screenW, screenH int) *HandPanel {
	return &HandPanel{screenW: screenW, screenH: screenH}
}

func (p *HandPanel) Selected() string {
	return p.selected
}

func (p *HandPanel) ClearSelection() {
	p.selected = ""
}

// Sync drops the selection if that card is no longer in the hand.
func (p *HandPanel) Sync(hand []app.CardView) {
	if p.selected == "" {
		return
	}
	for _, c := range hand {
		if c.ID == p.selected {
			return
		}
	}
	p.selected = ""
}

func (p *HandPanel) cardRect(index, total int) (float32, float32) {
	rowWidth := total*cardWidth + (total-1)*cardSpacing
	x := float32((p.screenW-rowWidth)/2 + index*(cardWidth+cardSpacing))
	y := float32(p.screenH - cardHeight - 12)
	return x, y
}

// HandleClick toggles selection of the card under (x, y). It reports
// whether the click landed on the panel.
func (p *HandPanel) HandleClick(x, y int, hand []app.CardView) bool {
	for i, c := range hand {
		cx, cy := p.cardRect(i, len(hand))
		if float32(x) >= cx && float32(x) <= cx+cardWidth &&
			float32(y) >= cy && float32(y) <= cy+cardHeight {
			if p.selected == c.ID {
				p.selected = ""
			} else {
				p.selected = c.ID
			}
			return true
		}
	}
	return false
}

func (p *HandPanel) Draw(screen *ebiten.Image, snap app.Snapshot) {
	face := basicfont.Face7x13
	for i, c := range snap.Hand {
		x, y := p.cardRect(i, len(snap.Hand))

		bg := color.RGBA{45, 45, 60, 240}
		if c.Cost > snap.ManaCurrent {
			bg = color.RGBA{40, 40, 45, 240}
		}
		vector.DrawFilledRect(screen, x, y, cardWidth, cardHeight, bg, false)

		border := color.RGBA{90, 90, 110, 255}
		if c.ID == p.selected {
			border = color.RGBA{240, 210, 80, 255}
		}
		vector.StrokeRect(screen, x, y, cardWidth, cardHeight, 2, border, false)

		text.Draw(screen, c.Name, face, int(x)+6, int(y)+18, color.RGBA{230, 230, 230, 255})
		text.Draw(screen, c.TowerType, face, int(x)+6, int(y)+38, color.RGBA{160, 160, 180, 255})
		text.Draw(screen, fmt.Sprintf("%d mana", c.Cost), face, int(x)+6, int(y)+58, color.RGBA{110, 140, 240, 255})
	}
}
