//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// BarHeight is the height in pixels of the status bar under the grid.
const BarHeight = 30

// HUD draws the status bar below the simulation view.
type HUD struct {
	bar *ebiten.Image
}

// NewHUD constructs a HUD for a view of the given pixel width.
func NewHUD(width int) *HUD {
	if width <= 0 {
		width = 1
	}
	bar := ebiten.NewImage(width, BarHeight)
	bar.Fill(color.RGBA{R: 24, G: 24, B: 24, A: 255})
	return &HUD{bar: bar}
}

// Draw renders the status line with its top edge at y.
func (h *HUD) Draw(screen *ebiten.Image, y int, s Status) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(h.bar, op)
	face := basicfont.Face7x13
	text.Draw(screen, s.String(), face, 10, y+BarHeight/2+face.Ascent/2, color.White)
}
