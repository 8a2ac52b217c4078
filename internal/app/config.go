package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"conway/internal/core"
	"conway/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size     int
	CellSize int
	Period   time.Duration
	TPS      int

	Pattern string
	Cells   string
	Seed    int64
	Density float64

	MetricsAddr string
	Turns       int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Size:     50,
		CellSize: 10,
		Period:   core.DefaultPeriod,
		TPS:      60,
		Pattern:  "glider",
		Seed:     42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid dimension in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.DurationVar(&c.Period, "period", c.Period, "time between generations")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern ("+strings.Join(life.PatternNames(), ", ")+")")
	fs.StringVar(&c.Cells, "cells", c.Cells, `extra live cells as "row,col;row,col"`)
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "random fill probability (0 disables)")
	fs.StringVar(&c.MetricsAddr, "metrics", c.MetricsAddr, "serve Prometheus metrics on this address")
	fs.IntVar(&c.Turns, "turns", c.Turns, "run this many generations without a UI and print the grid")
}

// InitialPattern combines the named pattern with any explicit cells.
func (c *Config) InitialPattern() (life.Pattern, error) {
	p, err := life.Lookup(c.Pattern)
	if err != nil {
		return nil, err
	}
	extra, err := life.ParseCells(c.Cells)
	if err != nil {
		return nil, fmt.Errorf("-cells: %w", err)
	}
	return append(p, extra...), nil
}
