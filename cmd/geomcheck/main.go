package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/geokit/internal/core/observability/log"
	"github.com/zeusync/geokit/internal/injector"
	"github.com/zeusync/geokit/internal/scenario"
)

func main() {
	os.Exit(run())
}

func run() int {
	path := flag.String("f", "", "scenario file (.yaml, .yml or .json)")
	levelName := flag.String("log-level", "info", "log level: debug, info, warn, error")
	workers := flag.Int("workers", 0, "worker count, overrides the scenario when positive")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: geomcheck -f scenario.yaml [-log-level info] [-workers n]")
		return 2
	}
	level, err := log.ParseLevel(*levelName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, cleanup, err := injector.InitializeRunner(injector.Options{LogLevel: level, Workers: *workers})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating runner:", err)
		return 1
	}
	defer cleanup()

	s, err := scenario.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading scenario:", err)
		return 1
	}

	report, err := runner.Run(ctx, s)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running scenario:", err)
		if scenario.IsCanceled(err) {
			return 130
		}
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(report); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing report:", err)
		return 1
	}
	return 0
}
