package life

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownPattern is returned by Lookup for names without a built-in pattern.
var ErrUnknownPattern = errors.New("life: unknown pattern")

// Cell addresses a grid position.
type Cell struct {
	Row, Col int
}

// Pattern is a set of live cells used to seed a grid.
type Pattern []Cell

// Translate returns a copy of p shifted by (dr, dc).
func (p Pattern) Translate(dr, dc int) Pattern {
	out := make(Pattern, len(p))
	for i, c := range p {
		out[i] = Cell{Row: c.Row + dr, Col: c.Col + dc}
	}
	return out
}

var patterns = map[string]Pattern{
	"empty":   nil,
	"glider":  {{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}},
	"block":   {{1, 1}, {1, 2}, {2, 1}, {2, 2}},
	"blinker": {{1, 2}, {2, 2}, {3, 2}},
	"beacon":  {{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {3, 4}, {4, 3}, {4, 4}},
}

// Lookup returns a copy of the built-in pattern with the given name.
func Lookup(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownPattern, name, strings.Join(PatternNames(), ", "))
	}
	return p.Translate(0, 0), nil
}

// PatternNames lists the built-in pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseCells parses "row,col;row,col" into a pattern. Blank input yields an
// empty pattern.
func ParseCells(s string) (Pattern, error) {
	var p Pattern
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rs, cs, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("life: cell %q: want row,col", part)
		}
		row, err := strconv.Atoi(strings.TrimSpace(rs))
		if err != nil {
			return nil, fmt.Errorf("life: cell %q: row: %w", part, err)
		}
		col, err := strconv.Atoi(strings.TrimSpace(cs))
		if err != nil {
			return nil, fmt.Errorf("life: cell %q: col: %w", part, err)
		}
		p = append(p, Cell{Row: row, Col: col})
	}
	return p, nil
}
