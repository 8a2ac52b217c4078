package life

import (
	"errors"
	"fmt"
	"strings"

	"conway/pkg/core"
)

// ErrInvalidSize is returned by New for a non-positive grid size.
var ErrInvalidSize = errors.New("life: grid size must be positive")

// Grid is a square Game of Life board with toroidal wrapping.
//
// Cells are stored row-major in a flat buffer. A second buffer receives the
// next generation and the two are swapped once every cell has been computed,
// so neighbor counts always come from a single generation.
//
// Grid is not safe for concurrent use.
type Grid struct {
	size       int
	cur        []uint8
	nxt        []uint8
	generation int
}

// New returns a size x size grid with every cell dead.
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	cells := make([]uint8, size*size)
	return &Grid{size: size, cur: cells, nxt: make([]uint8, len(cells))}, nil
}

// Size returns the grid dimension.
func (g *Grid) Size() int { return g.size }

// Generation returns how many times Advance has run since construction or
// the last Clear.
func (g *Grid) Generation() int { return g.generation }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Alive reports the state of a cell. Out-of-range coordinates read as dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cur[row*g.size+col] == 1
}

// SetCell sets a cell's state. Out-of-range coordinates are ignored.
func (g *Grid) SetCell(row, col int, alive bool) {
	if !g.inBounds(row, col) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.cur[row*g.size+col] = v
}

// Toggle flips a cell and reports whether anything changed.
func (g *Grid) Toggle(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	g.cur[row*g.size+col] ^= 1
	return true
}

// CountNeighbors returns the number of live cells among the eight wrapped
// neighbors of (row, col). The coordinates must already be in range.
func (g *Grid) CountNeighbors(row, col int) int {
	n := g.size
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr + n) % n
			c := (col + dc + n) % n
			count += int(g.cur[r*n+c])
		}
	}
	return count
}

// Advance applies the B3/S23 rule to every cell and bumps the generation.
func (g *Grid) Advance() {
	n := g.size
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			idx := row*n + col
			neighbors := g.CountNeighbors(row, col)
			alive := g.cur[idx] == 1
			g.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				g.nxt[idx] = 1
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

// Population counts live cells.
func (g *Grid) Population() int {
	total := 0
	for _, c := range g.cur {
		total += int(c)
	}
	return total
}

// CopyCells appends the row-major 0/1 cell values to dst[:0] and returns the
// result, reusing dst when it has room.
func (g *Grid) CopyCells(dst []uint8) []uint8 {
	return append(dst[:0], g.cur...)
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = 0
	}
	g.generation = 0
}

// Seed marks every cell in p alive.
func (g *Grid) Seed(p Pattern) {
	for _, c := range p {
		g.SetCell(c.Row, c.Col, true)
	}
}

// Randomize sets each cell alive with the given probability using a
// deterministic generator. The generation counter is left untouched.
func (g *Grid) Randomize(seed int64, density float64) {
	rng := core.NewRNG(seed)
	for i := range g.cur {
		g.cur[i] = 0
		if rng.Chance(density) {
			g.cur[i] = 1
		}
	}
}

// String renders the grid as rows of '#' (alive) and '.' (dead).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.cur[row*g.size+col] == 1 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
