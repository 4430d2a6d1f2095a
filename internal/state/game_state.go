// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-card-defense/internal/app"
	"go-card-defense/internal/config"
	"go-card-defense/internal/ui"
	"go-card-defense/pkg/geom"
)

// PlayState runs the simulation and handles placement input. A click on
// the hand selects a card; a click on the field plays it there. Space
// pauses.
type PlayState struct {
	sm      *StateMachine
	game    *app.Game
	newGame GameFactory

	hud   *ui.HUD
	hand  *ui.HandPanel
	field *ui.Field

	message   string
	messageTL float64 // seconds left to show the message
}

func NewPlayState(sm *StateMachine, game *app.Game, newGame GameFactory) *PlayState {
	return &PlayState{
		sm:      sm,
		game:    game,
		newGame: newGame,
		hud:     ui.NewHUD(),
		hand:    ui.NewHandPanel(config.ScreenWidth, config.ScreenHeight),
		field:   ui.NewField(),
	}
}

func (s *PlayState) Enter() {}
func (s *PlayState) Exit()  {}

func (s *PlayState) Update(deltaTime float64) {
	s.game.Update(deltaTime * 1000)
	if s.messageTL > 0 {
		s.messageTL -= deltaTime
	}

	snap := s.game.Snapshot()
	if !snap.Session.IsActive && snap.Session.GameState != "not-started" {
		s.sm.SetState(NewGameOverState(s.sm, s.game, s.newGame))
		return
	}
	s.hand.Sync(snap.Hand)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := s.game.Pause(); err == nil {
			s.sm.SetState(NewPauseState(s.sm, s.game, s))
		}
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.hand.HandleClick(x, y, snap.Hand) {
			return
		}
		if cardID := s.hand.Selected(); cardID != "" {
			s.playCard(cardID, geom.Point{X: float64(x), Y: float64(y)})
		}
	}
}

func (s *PlayState) playCard(cardID string, pos geom.Point) {
	res, err := s.game.PlayCard(cardID, pos)
	switch {
	case errors.Is(err, app.ErrInvalidPlacement):
		s.flash("can't build there")
	case err != nil:
		s.flash(err.Error())
	case !res.Played:
		s.flash(fmt.Sprintf("need %d more mana", res.Shortage))
	default:
		s.hand.ClearSelection()
	}
}

func (s *PlayState) flash(message string) {
	s.message = message
	s.messageTL = 2
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	snap := s.game.Snapshot()
	s.field.Draw(screen, snap, s.hand.Selected() != "")
	s.hud.Draw(screen, snap)
	s.hand.Draw(screen, snap)
	if s.messageTL > 0 {
		text.Draw(screen, s.message, basicfont.Face7x13,
			config.ScreenWidth/2-len(s.message)*4, config.ScreenHeight-110,
			color.RGBA{240, 210, 80, 255})
	}
}
