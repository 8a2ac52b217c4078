package life

import (
	"errors"
	"slices"
	"testing"

	"conway/pkg/core"
)

func mustNew(t *testing.T, size int) *Grid {
	t.Helper()
	g, err := New(size)
	if err != nil {
		t.Fatalf("New(%d): %v", size, err)
	}
	return g
}

func liveCells(g *Grid) map[Cell]bool {
	live := map[Cell]bool{}
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			if g.Alive(row, col) {
				live[Cell{row, col}] = true
			}
		}
	}
	return live
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1, -50} {
		g, err := New(size)
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("New(%d) err=%v, expected ErrInvalidSize", size, err)
		}
		if g != nil {
			t.Fatalf("New(%d) returned a grid alongside the error", size)
		}
	}
}

func TestNewStartsDead(t *testing.T) {
	g := mustNew(t, 7)
	if g.Size() != 7 {
		t.Fatalf("size=%d, expected 7", g.Size())
	}
	if g.Generation() != 0 {
		t.Fatalf("generation=%d, expected 0", g.Generation())
	}
	if g.Population() != 0 {
		t.Fatalf("population=%d, expected 0", g.Population())
	}
}

func TestSetCellIdempotent(t *testing.T) {
	g := mustNew(t, 4)
	g.SetCell(1, 2, true)
	g.SetCell(1, 2, true)
	if !g.Alive(1, 2) || g.Population() != 1 {
		t.Fatalf("expected single live cell at (1,2), got\n%s", g)
	}
	g.SetCell(1, 2, false)
	g.SetCell(1, 2, false)
	if g.Alive(1, 2) || g.Population() != 0 {
		t.Fatalf("expected empty grid, got\n%s", g)
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	g := mustNew(t, 5)
	g.SetCell(-1, 0, true)
	g.SetCell(5, 5, true)
	g.SetCell(0, 5, true)
	g.SetCell(2, -3, true)
	if g.Population() != 0 {
		t.Fatalf("out-of-range writes mutated the grid:\n%s", g)
	}
	if g.Toggle(-1, 0) || g.Toggle(5, 5) {
		t.Fatal("Toggle reported a change for out-of-range coordinates")
	}
	if g.Population() != 0 {
		t.Fatalf("out-of-range toggles mutated the grid:\n%s", g)
	}
	if g.Alive(-1, 0) || g.Alive(5, 0) {
		t.Fatal("out-of-range reads must report dead")
	}
}

func TestToggle(t *testing.T) {
	g := mustNew(t, 3)
	if !g.Toggle(0, 1) || !g.Alive(0, 1) {
		t.Fatal("first toggle should make the cell alive")
	}
	if !g.Toggle(0, 1) || g.Alive(0, 1) {
		t.Fatal("second toggle should kill the cell")
	}
}

func TestNeighborWraparound(t *testing.T) {
	const n = 6
	g := mustNew(t, n)
	g.SetCell(0, 0, true)
	for _, c := range []Cell{{n - 1, 0}, {0, n - 1}, {n - 1, n - 1}, {1, 1}, {0, 1}} {
		if got := g.CountNeighbors(c.Row, c.Col); got != 1 {
			t.Fatalf("CountNeighbors(%d,%d)=%d, expected 1", c.Row, c.Col, got)
		}
	}
	if got := g.CountNeighbors(0, 0); got != 0 {
		t.Fatalf("a cell must not count itself, got %d", got)
	}
	if got := g.CountNeighbors(3, 3); got != 0 {
		t.Fatalf("CountNeighbors(3,3)=%d, expected 0", got)
	}
}

func TestCountNeighborsFull(t *testing.T) {
	g := mustNew(t, 4)
	g.Randomize(1, 1)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if got := g.CountNeighbors(row, col); got != 8 {
				t.Fatalf("CountNeighbors(%d,%d)=%d on full grid, expected 8", row, col, got)
			}
		}
	}
	g.Advance()
	if g.Population() != 0 {
		t.Fatalf("overcrowded grid should die out, got\n%s", g)
	}
}

var neighborOffsets = []Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func TestTransitionRule(t *testing.T) {
	for k := 0; k <= 8; k++ {
		for _, alive := range []bool{true, false} {
			g := mustNew(t, 5)
			g.SetCell(2, 2, alive)
			for _, off := range neighborOffsets[:k] {
				g.SetCell(2+off.Row, 2+off.Col, true)
			}
			if got := g.CountNeighbors(2, 2); got != k {
				t.Fatalf("setup: CountNeighbors=%d, expected %d", got, k)
			}
			g.Advance()
			want := k == 3 || (alive && k == 2)
			if g.Alive(2, 2) != want {
				t.Fatalf("alive=%v neighbors=%d: next=%v, expected %v", alive, k, g.Alive(2, 2), want)
			}
		}
	}
}

func TestBirth(t *testing.T) {
	g := mustNew(t, 5)
	g.Seed(Pattern{{0, 1}, {1, 0}, {1, 2}})
	g.Advance()
	if !g.Alive(1, 1) {
		t.Fatalf("dead cell with three neighbors should be born:\n%s", g)
	}
}

func TestEmptyGridStable(t *testing.T) {
	for _, size := range []int{1, 2, 3, 10} {
		g := mustNew(t, size)
		for i := 0; i < 20; i++ {
			g.Advance()
		}
		if g.Population() != 0 {
			t.Fatalf("size %d: empty grid grew cells:\n%s", size, g)
		}
		if g.Generation() != 20 {
			t.Fatalf("size %d: generation=%d, expected 20", size, g.Generation())
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	g := mustNew(t, 6)
	block, err := Lookup("block")
	if err != nil {
		t.Fatal(err)
	}
	g.Seed(block)
	before := g.String()
	for i := 0; i < 3; i++ {
		g.Advance()
		if g.String() != before {
			t.Fatalf("block changed after %d steps:\n%s", i+1, g)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustNew(t, 5)
	g.Seed(Pattern{{1, 2}, {2, 2}, {3, 2}})

	g.Advance()
	expects := map[Cell]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	if got := liveCells(g); !mapsEqual(got, expects) {
		t.Fatalf("after first step got %v, expected %v", got, expects)
	}

	g.Advance()
	expects = map[Cell]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	if got := liveCells(g); !mapsEqual(got, expects) {
		t.Fatalf("after second step got %v, expected %v", got, expects)
	}
}

func TestGliderTranslation(t *testing.T) {
	g := mustNew(t, 50)
	glider, err := Lookup("glider")
	if err != nil {
		t.Fatal(err)
	}
	g.Seed(glider)
	for i := 0; i < 4; i++ {
		g.Advance()
	}
	expects := map[Cell]bool{}
	for _, c := range glider.Translate(1, 1) {
		expects[c] = true
	}
	if got := liveCells(g); !mapsEqual(got, expects) {
		t.Fatalf("glider after 4 steps got %v, expected %v", got, expects)
	}
	if g.Generation() != 4 {
		t.Fatalf("generation=%d, expected 4", g.Generation())
	}
}

func TestGliderCrossesEdge(t *testing.T) {
	const n = 8
	g := mustNew(t, n)
	glider, _ := Lookup("glider")
	g.Seed(glider)
	// One full lap diagonally takes 4*n generations.
	for i := 0; i < 4*n; i++ {
		g.Advance()
	}
	expects := map[Cell]bool{}
	for _, c := range glider {
		expects[c] = true
	}
	if got := liveCells(g); !mapsEqual(got, expects) {
		t.Fatalf("glider did not return after a lap: got %v\n%s", got, g)
	}
}

func TestGenerationCounter(t *testing.T) {
	g := mustNew(t, 3)
	g.Randomize(7, 0.5)
	for k := 1; k <= 11; k++ {
		g.Advance()
		if g.Generation() != k {
			t.Fatalf("generation=%d, expected %d", g.Generation(), k)
		}
	}
	g.Clear()
	if g.Generation() != 0 || g.Population() != 0 {
		t.Fatalf("Clear left generation=%d population=%d", g.Generation(), g.Population())
	}
}

// nextReference computes one generation from a frozen copy of the grid.
func nextReference(g *Grid) [][]bool {
	n := g.Size()
	snap := make([][]bool, n)
	for r := range snap {
		snap[r] = make([]bool, n)
		for c := range snap[r] {
			snap[r][c] = g.Alive(r, c)
		}
	}
	next := make([][]bool, n)
	for r := range next {
		next[r] = make([]bool, n)
		for c := range next[r] {
			count := 0
			for _, off := range neighborOffsets {
				if snap[((r+off.Row)%n+n)%n][((c+off.Col)%n+n)%n] {
					count++
				}
			}
			next[r][c] = count == 3 || (snap[r][c] && count == 2)
		}
	}
	return next
}

func TestAdvanceMatchesSnapshotReference(t *testing.T) {
	rng := core.NewRNG(2024)
	for trial := 0; trial < 60; trial++ {
		size := 1 + rng.IntN(16)
		g := mustNew(t, size)
		g.Randomize(int64(trial), 0.35)
		for step := 0; step < 3; step++ {
			want := nextReference(g)
			g.Advance()
			for r := 0; r < size; r++ {
				for c := 0; c < size; c++ {
					if g.Alive(r, c) != want[r][c] {
						t.Fatalf("trial %d size %d step %d: cell (%d,%d)=%v, expected %v", trial, size, step, r, c, g.Alive(r, c), want[r][c])
					}
				}
			}
		}
	}
}

func TestCopyCellsDoesNotAlias(t *testing.T) {
	g := mustNew(t, 3)
	g.SetCell(1, 1, true)
	buf := make([]uint8, 0, 9)
	cells := g.CopyCells(buf)
	want := []uint8{0, 0, 0, 0, 1, 0, 0, 0, 0}
	if !slices.Equal(cells, want) {
		t.Fatalf("CopyCells=%v, expected %v", cells, want)
	}
	cells[0] = 1
	if g.Alive(0, 0) {
		t.Fatal("mutating the copy leaked into the grid")
	}
	again := g.CopyCells(cells)
	if &again[0] != &cells[0] {
		t.Fatal("CopyCells should reuse a buffer with enough capacity")
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := mustNew(t, 16)
	b := mustNew(t, 16)
	a.Randomize(99, 0.4)
	b.Randomize(99, 0.4)
	if a.String() != b.String() {
		t.Fatal("same seed produced different grids")
	}
	a.Randomize(99, 0)
	if a.Population() != 0 {
		t.Fatalf("density 0 left %d live cells", a.Population())
	}
	a.Randomize(99, 1)
	if a.Population() != 16*16 {
		t.Fatalf("density 1 left %d live cells", a.Population())
	}
}

func TestString(t *testing.T) {
	g := mustNew(t, 3)
	g.Seed(Pattern{{0, 0}, {2, 1}})
	want := "#..\n...\n.#.\n"
	if g.String() != want {
		t.Fatalf("String()=%q, expected %q", g.String(), want)
	}
}

func mapsEqual(a, b map[Cell]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
