// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Button is a clickable rectangle with a centered label.
type Button struct {
	X, Y, W, H float32
	Label      string
	Bg         color.RGBA
	Hover      color.RGBA
	TextColor  color.RGBA
}

func NewButton(x, y, w, h float32, label string) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Label:     label,
		Bg:        color.RGBA{60, 60, 80, 255},
		Hover:     color.RGBA{90, 90, 120, 255},
		TextColor: color.RGBA{230, 230, 230, 255},
	}
}

func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

// Clicked reports whether the left mouse button was just pressed inside
// the button this frame.
func (b *Button) Clicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return b.Contains(ebiten.CursorPosition())
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.Bg
	if b.Contains(ebiten.CursorPosition()) {
		bg = b.Hover
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, color.RGBA{30, 30, 40, 255}, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.Label)
	tx := int(b.X) + (int(b.W)-bounds.Dx())/2
	ty := int(b.Y) + (int(b.H)+bounds.Dy())/2
	text.Draw(screen, b.Label, face, tx, ty, b.TextColor)
}
