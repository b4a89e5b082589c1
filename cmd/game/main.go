// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"

	"go-survivors/internal/config"
	"go-survivors/internal/state"
	"go-survivors/internal/ui"
)

const startFromGame = false // true skips the menu

// AppGame adapts the state machine to ebiten's loop. Ebiten's fixed
// 60 TPS drives exactly one simulation tick per Update.
type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	faces, err := ui.NewFaces()
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, faces))
	} else {
		sm.SetState(state.NewMenuState(sm, faces))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Survivors")
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
