package ui

import "fmt"

// Status is the simulation summary shown under the grid.
type Status struct {
	Generation int
	Population int
	Paused     bool
}

// String formats the status line.
func (s Status) String() string {
	line := fmt.Sprintf("Generation: %d  Population: %d", s.Generation, s.Population)
	if s.Paused {
		line += "  [paused]"
	}
	return line
}
