package app

import (
	"time"

	"conway/internal/core"
	"conway/internal/metrics"
	"conway/internal/ui"
	"conway/pkg/life"
)

// reseedDensity is the fill probability used by Reseed when no density was
// configured.
const reseedDensity = 0.25

// Driver owns a grid and turns input and elapsed time into grid operations.
// Every front end funnels through a Driver from a single goroutine, so input
// handled during a frame always lands before that frame's advance.
type Driver struct {
	grid    *life.Grid
	clock   *core.FixedStep
	metrics *metrics.Recorder

	initial life.Pattern
	seed    int64
	density float64

	paused   bool
	stepOnce bool
}

// NewDriver builds the grid described by cfg and seeds it. rec may be nil.
func NewDriver(cfg *Config, rec *metrics.Recorder) (*Driver, error) {
	return newDriver(cfg, rec, core.NewFixedStep(cfg.Period))
}

func newDriver(cfg *Config, rec *metrics.Recorder, clock *core.FixedStep) (*Driver, error) {
	grid, err := life.New(cfg.Size)
	if err != nil {
		return nil, err
	}
	initial, err := cfg.InitialPattern()
	if err != nil {
		return nil, err
	}
	d := &Driver{
		grid:    grid,
		clock:   clock,
		metrics: rec,
		initial: initial,
		seed:    cfg.Seed,
		density: cfg.Density,
	}
	d.Reset()
	return d, nil
}

// Grid exposes the simulation for drawing. Callers must only read from it.
func (d *Driver) Grid() *life.Grid { return d.grid }

// Paused reports whether timed advances are suspended.
func (d *Driver) Paused() bool { return d.paused }

// Status summarizes the grid for the presentation layer.
func (d *Driver) Status() ui.Status {
	return ui.Status{
		Generation: d.grid.Generation(),
		Population: d.grid.Population(),
		Paused:     d.paused,
	}
}

// CellAt maps a pointer position to a grid cell where each cell covers
// cellW x cellH units.
func (d *Driver) CellAt(x, y, cellW, cellH int) (row, col int, ok bool) {
	if x < 0 || y < 0 || cellW <= 0 || cellH <= 0 {
		return 0, 0, false
	}
	row, col = y/cellH, x/cellW
	n := d.grid.Size()
	if row >= n || col >= n {
		return 0, 0, false
	}
	return row, col, true
}

// Click toggles the cell under a pointer position.
func (d *Driver) Click(x, y, cellW, cellH int) bool {
	row, col, ok := d.CellAt(x, y, cellW, cellH)
	if !ok {
		return false
	}
	return d.Toggle(row, col)
}

// Toggle flips one cell.
func (d *Driver) Toggle(row, col int) bool {
	if !d.grid.Toggle(row, col) {
		return false
	}
	d.metrics.Toggled()
	d.sync()
	return true
}

// TogglePause suspends or resumes timed advances.
func (d *Driver) TogglePause() { d.paused = !d.paused }

// Resume clears the paused state.
func (d *Driver) Resume() { d.paused = false }

// StepOnce requests a single advance on the next Update, even when paused.
func (d *Driver) StepOnce() { d.stepOnce = true }

// Reset restores the configured starting state at generation 0.
func (d *Driver) Reset() {
	d.grid.Clear()
	if d.density > 0 {
		d.grid.Randomize(d.seed, d.density)
	}
	d.grid.Seed(d.initial)
	d.clock.Reset()
	d.stepOnce = false
	d.sync()
}

// Reseed switches to a random fill with a new seed and resets.
func (d *Driver) Reseed(seed int64) {
	d.seed = seed
	if d.density <= 0 {
		d.density = reseedDensity
	}
	d.Reset()
}

// Clear kills every cell and resets the generation counter.
func (d *Driver) Clear() {
	d.grid.Clear()
	d.stepOnce = false
	d.sync()
}

// Update is called once per frame after input has been applied. It advances
// the grid when a period has elapsed or a single step was requested, and
// reports whether it did.
func (d *Driver) Update() bool {
	due := d.clock.ShouldStep()
	if d.stepOnce || (!d.paused && due) {
		d.stepOnce = false
		d.advance()
		return true
	}
	return false
}

// Run advances the grid n times without consulting the clock.
func (d *Driver) Run(n int) {
	for i := 0; i < n; i++ {
		d.advance()
	}
}

func (d *Driver) advance() {
	start := time.Now()
	d.grid.Advance()
	d.metrics.Advanced(time.Since(start))
	d.sync()
}

func (d *Driver) sync() {
	if d.metrics == nil {
		return
	}
	d.metrics.Sync(d.grid.Generation(), d.grid.Population())
}
