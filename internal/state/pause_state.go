// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-card-defense/internal/app"
	"go-card-defense/internal/config"
)

// PauseState freezes play and keeps the field visible behind an overlay.
// Space resumes.
type PauseState struct {
	sm     *StateMachine
	game   *app.Game
	resume *PlayState
}

func NewPauseState(sm *StateMachine, game *app.Game, resume *PlayState) *PauseState {
	return &PauseState{sm: sm, game: game, resume: resume}
}

func (s *PauseState) Enter() {}
func (s *PauseState) Exit()  {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := s.game.Resume(); err == nil {
			s.sm.SetState(s.resume)
		}
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.resume.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, 140}, false)
	face := basicfont.Face7x13
	label := "PAUSED - press Space to resume"
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face,
		(config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2,
		color.RGBA{230, 230, 230, 255})
}
