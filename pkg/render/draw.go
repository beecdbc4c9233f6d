// pkg/render/draw.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Circle draws a filled circle at screen coordinates.
func Circle(screen *ebiten.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)
}

// Line draws a stroked segment between two screen points.
func Line(screen *ebiten.Image, x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
}

// TextLine draws a single line of text with the given face.
func TextLine(screen *ebiten.Image, face font.Face, str string, x, y int, clr color.Color) {
	text.Draw(screen, str, face, x, y, clr)
}
