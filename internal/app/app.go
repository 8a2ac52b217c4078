//go:build ebiten

package app

import (
	"image/color"
	"time"

	"conway/internal/render"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Driver to the ebiten.Game interface.
type Game struct {
	driver  *Driver
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game drawing each cell as scale x scale pixels.
func New(driver *Driver, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	n := driver.Grid().Size()
	return &Game{
		driver:   driver,
		painter:  render.NewGridPainter(n),
		hud:      ui.NewHUD(n * scale),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles input first and then advances the simulation if due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.driver.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.driver.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.driver.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.driver.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.driver.Click(x, y, g.scale, g.scale)
	}

	g.driver.Update()
	return nil
}

// Draw renders the grid and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.driver.Grid()
	g.painter.Blit(screen, grid, g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, grid.Size()*g.scale, g.driver.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize(g.driver.Grid().Size(), g.scale)
}

// WindowSize returns the pixel size of the view for an n x n grid.
func WindowSize(n, scale int) (int, int) {
	return n * scale, n*scale + ui.BarHeight
}
