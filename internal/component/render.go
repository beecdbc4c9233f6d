// internal/component/render.go
package component

import "image/color"

// Renderable is the debug-view representation of an entity: a flat circle.
type Renderable struct {
	Color  color.RGBA
	Radius float64
}
