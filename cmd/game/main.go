// cmd/game/main.go
package main

import (
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-card-defense/internal/app"
	"go-card-defense/internal/config"
	"go-card-defense/internal/gametime"
	"go-card-defense/internal/state"
	"go-card-defense/internal/storage"
)

// AppGame adapts the state machine to ebiten's game loop with a clamped
// delta so frame spikes never teleport enemies.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 18, 26, 255})
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	var store storage.LibraryStore
	if cfg.LibraryPath != "" {
		sqlStore, err := storage.OpenSQLite(cfg.LibraryPath)
		if err != nil {
			logger.Error("open library store", "path", cfg.LibraryPath, "error", err)
			os.Exit(1)
		}
		store = sqlStore
	} else {
		store = storage.NewMemoryStore()
	}
	defer store.Close()

	newGame := func() (*app.Game, error) {
		return app.NewGame(cfg, gametime.SystemClock{}, store, logger)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, newGame))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Card Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()}); err != nil {
		logger.Error("run game", "error", err)
		os.Exit(1)
	}
}
