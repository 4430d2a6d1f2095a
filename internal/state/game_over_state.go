// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-card-defense/internal/app"
	"go-card-defense/internal/config"
	"go-card-defense/internal/ui"
)

// GameOverState shows the final outcome and offers a restart.
type GameOverState struct {
	sm          *StateMachine
	game        *app.Game
	newGame     GameFactory
	againButton *ui.Button
}

func NewGameOverState(sm *StateMachine, game *app.Game, newGame GameFactory) *GameOverState {
	return &GameOverState{
		sm:      sm,
		game:    game,
		newGame: newGame,
		againButton: ui.NewButton(
			config.ScreenWidth/2-100, config.ScreenHeight/2+40, 200, 60, "PLAY AGAIN"),
	}
}

func (s *GameOverState) Enter() {}
func (s *GameOverState) Exit()  {}

func (s *GameOverState) Update(deltaTime float64) {
	if s.againButton.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(NewMenuState(s.sm, s.newGame))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	snap := s.game.Snapshot()

	title := "VICTORY - TIME SURVIVED"
	if snap.Session.GameState == "game-over" {
		title = "DEFEAT - BASE DESTROYED"
	}
	lines := []string{
		title,
		fmt.Sprintf("Score: %d", snap.Session.CurrentScore),
		fmt.Sprintf("Enemies defeated: %d", snap.Session.EnemiesDefeated),
		fmt.Sprintf("Cards discovered: %d", snap.Discovered),
	}
	y := config.ScreenHeight/2 - 100
	for _, line := range lines {
		bounds := text.BoundString(face, line)
		text.Draw(screen, line, face, (config.ScreenWidth-bounds.Dx())/2, y,
			color.RGBA{230, 230, 230, 255})
		y += 26
	}
	s.againButton.Draw(screen)
}
