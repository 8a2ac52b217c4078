package main

import (
	"flag"
	"fmt"
	"log"

	"conway/internal/app"
	"conway/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// setup parses flags and builds the driver. The registry is nil unless
// -metrics was given.
func setup() (*app.Config, *app.Driver, *prometheus.Registry) {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var (
		reg *prometheus.Registry
		rec *metrics.Recorder
	)
	if cfg.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
		rec = metrics.NewRecorder(reg)
	}

	driver, err := app.NewDriver(cfg, rec)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	return cfg, driver, reg
}

// runBatch advances the grid without any UI and prints the result.
func runBatch(driver *app.Driver, turns int) {
	driver.Run(turns)
	fmt.Print(driver.Grid())
	fmt.Println(driver.Status())
}
