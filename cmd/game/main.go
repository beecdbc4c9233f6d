// cmd/game/main.go
package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-corn-defense/internal/config"
	"go-corn-defense/internal/defs"
	"go-corn-defense/internal/state"
)

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
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := defs.LoadAll("assets/defs"); err != nil {
		log.Printf("definitions: %v, using builtin set", err)
		defs.UseBuiltin()
	}
	tuning, err := config.LoadTuning("configs/tuning.yaml")
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, tuning))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Corn Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
