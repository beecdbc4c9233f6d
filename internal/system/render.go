// internal/system/render.go
package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-corn-defense/internal/config"
	"go-corn-defense/internal/entity"
	"go-corn-defense/pkg/render"
	"go-corn-defense/pkg/vec3"
)

// RenderSystem is the debug view: entities as flat circles on the X/Z
// plane. It reads simulation state and never writes it.
type RenderSystem struct {
	ecs  *entity.ECS
	path []vec3.Vec3
}

func NewRenderSystem(ecs *entity.ECS, path []vec3.Vec3) *RenderSystem {
	return &RenderSystem{ecs: ecs, path: path}
}

func toScreen(p vec3.Vec3) (float32, float32) {
	x := float32(config.ScreenWidth)/2 + float32(p.X*config.WorldScale)
	y := float32(config.ScreenHeight)/2 + float32(p.Z*config.WorldScale)
	return x, y
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	for i := 1; i < len(s.path); i++ {
		x0, y0 := toScreen(s.path[i-1])
		x1, y1 := toScreen(s.path[i])
		render.Line(screen, x0, y0, x1, y1, 2, config.PathColor)
	}

	for id, renderable := range s.ecs.Renderables {
		tr := s.ecs.Transforms[id]
		if tr == nil {
			continue
		}
		x, y := toScreen(tr.Position)
		render.Circle(screen, x, y, float32(renderable.Radius*config.WorldScale), renderable.Color)
	}
}
