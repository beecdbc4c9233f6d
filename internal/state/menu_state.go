// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-corn-defense/internal/config"
	"go-corn-defense/pkg/render"
)

// MenuState is the title screen. No scene is active here, so nothing may
// spawn scene-parented entities.
type MenuState struct {
	sm     *StateMachine
	tuning config.Tuning
}

func NewMenuState(sm *StateMachine, tuning config.Tuning) *MenuState {
	return &MenuState{sm: sm, tuning: tuning}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.tuning))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	render.TextLine(screen, basicfont.Face7x13, "CORN DEFENSE", config.ScreenWidth/2-45, config.ScreenHeight/2-10, config.HUDTextColor)
	render.TextLine(screen, basicfont.Face7x13, "press SPACE to start", config.ScreenWidth/2-70, config.ScreenHeight/2+10, config.HUDTextColor)
}

func (m *MenuState) Exit() {}
