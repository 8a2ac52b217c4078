//go:build ebiten

package main

import (
	"context"
	"errors"
	"log"

	"conway/internal/app"
	"conway/internal/metrics"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, driver, reg := setup()
	if cfg.Turns > 0 {
		runBatch(driver, cfg.Turns)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if reg != nil {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg); err != nil {
				log.Printf("metrics: %v", err)
			}
		}()
	}

	game := app.New(driver, cfg.CellSize)
	w, h := app.WindowSize(driver.Grid().Size(), cfg.CellSize)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
