// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-card-defense/internal/app"
	"go-card-defense/internal/config"
	"go-card-defense/internal/ui"
)

// GameFactory builds a fresh game for a new run.
type GameFactory func() (*app.Game, error)

// MenuState is the title screen. Clicking start (or pressing Enter) builds
// a new game and switches to the play state.
type MenuState struct {
	sm          *StateMachine
	newGame     GameFactory
	startButton *ui.Button
	lastError   string
}

func NewMenuState(sm *StateMachine, newGame GameFactory) *MenuState {
	return &MenuState{
		sm:      sm,
		newGame: newGame,
		startButton: ui.NewButton(
			config.ScreenWidth/2-100, config.ScreenHeight/2-30, 200, 60, "START"),
	}
}

func (s *MenuState) Enter() {}
func (s *MenuState) Exit()  {}

func (s *MenuState) Update(deltaTime float64) {
	if s.startButton.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		game, err := s.newGame()
		if err != nil {
			s.lastError = err.Error()
			return
		}
		if err := game.Start(); err != nil {
			s.lastError = err.Error()
			return
		}
		s.sm.SetState(NewPlayState(s.sm, game, s.newGame))
	}
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	title := "CARD DEFENSE"
	bounds := text.BoundString(face, title)
	text.Draw(screen, title, face,
		(config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-80,
		color.RGBA{230, 230, 230, 255})
	s.startButton.Draw(screen)
	if s.lastError != "" {
		text.Draw(screen, s.lastError, face, 20, config.ScreenHeight-20, color.RGBA{220, 90, 90, 255})
	}
}
