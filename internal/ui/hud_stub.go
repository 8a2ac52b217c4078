//go:build !ebiten

package ui

// BarHeight is the height in pixels of the status bar under the grid.
const BarHeight = 30

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, Status) {}
