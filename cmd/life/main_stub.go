//go:build !ebiten

package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"conway/internal/metrics"
	"conway/internal/term"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// Without the ebiten tag the grid runs in the terminal.
func main() {
	cfg, driver, reg := setup()
	if cfg.Turns > 0 {
		runBatch(driver, cfg.Turns)
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if reg != nil {
		log.Printf("serving metrics on %s/metrics", cfg.MetricsAddr)
	}
	// Log lines would tear the screen; errors are reported after Fini.
	log.SetOutput(io.Discard)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)

	if reg != nil {
		g.Go(func() error { return metrics.Serve(ctx, cfg.MetricsAddr, reg) })
	}
	g.Go(func() error {
		defer cancel()
		return term.New(screen, driver, cfg.TPS).Run(ctx)
	})

	err = g.Wait()
	screen.Fini()
	log.SetOutput(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}
