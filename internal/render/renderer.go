//go:build ebiten

package render

import (
	"image/color"

	"conway/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image from a grid and draws it scaled.
type GridPainter struct {
	n     int
	img   *ebiten.Image
	cells []uint8
	buf   []byte

	lineColor color.Color
}

// NewGridPainter allocates a painter for an n x n grid.
func NewGridPainter(n int) *GridPainter {
	return &GridPainter{
		n:         n,
		img:       ebiten.NewImage(n, n),
		cells:     make([]uint8, 0, n*n),
		buf:       make([]byte, 4*n*n),
		lineColor: color.Gray{Y: 40},
	}
}

// Blit uploads the grid's cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, on, off color.Color, scale int) {
	if g.Size() != gp.n {
		return
	}
	gp.cells = g.CopyCells(gp.cells)
	fillBinaryRGBA(gp.buf, gp.cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	extent := float32(gp.n * scale)
	for _, p := range gridLines(gp.n, scale) {
		vector.StrokeLine(dst, p, 0, p, extent, 1, gp.lineColor, false)
		vector.StrokeLine(dst, 0, p, extent, p, 1, gp.lineColor, false)
	}
}
