// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	game "go-corn-defense/internal/app"
	"go-corn-defense/internal/config"
	"go-corn-defense/pkg/render"
	"go-corn-defense/pkg/vec3"
)

// GameState runs a level.
type GameState struct {
	sm     *StateMachine
	game   *game.Game
	tuning config.Tuning
}

func NewGameState(sm *StateMachine, tuning config.Tuning) *GameState {
	gs := &GameState{
		sm:     sm,
		game:   game.NewGame(tuning),
		tuning: tuning,
	}

	// Built-in level layout: two towers covering the path corner.
	placements := []struct {
		defID string
		pos   vec3.Vec3
	}{
		{"gun_tower", vec3.New(0, 0, -3)},
		{"cannon_tower", vec3.New(7, 0, 2)},
	}
	for _, p := range placements {
		if _, err := gs.game.PlaceTower(p.defID, p.pos); err != nil {
			log.Printf("place tower: %v", err)
		}
	}

	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.game.Update(deltaTime)

	if g.game.BaseHealth <= 0 || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewMenuState(g.sm, g.tuning))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)

	hud := fmt.Sprintf("wave %d   kills %d   base %d",
		g.game.WaveSystem.Wave, g.game.Kills, g.game.BaseHealth)
	render.TextLine(screen, basicfont.Face7x13, hud, 10, 20, config.HUDTextColor)
}

func (g *GameState) Exit() {
	g.game.Teardown()
}
