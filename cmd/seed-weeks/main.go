package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/perftrack/internal/seeddata"
	"github.com/okian/perftrack/pkg/logger"
)

// Default configuration constants.
const (
	defaultWeeks   = 12
	defaultSeed    = 1
	defaultSample  = 10
	defaultMissing = 0.1
	defaultTimeout = 30 * time.Second
	runTimeout     = 10 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the service")
		weeks   = flag.Int("weeks", defaultWeeks, "Weeks to upload, 1..12")
		seed    = flag.Int64("seed", defaultSeed, "Generator seed")
		sample  = flag.Int("sample", defaultSample, "Athletes to verify")
		missing = flag.Float64("missing", defaultMissing, "Chance that a metric cell is left blank")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		keep    = flag.Bool("keep", false, "Keep the session open after the run")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seeddata.ShowHelp()
		return
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	if err := logger.Init(logger.WithLevel(level)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)

	cfg := &seeddata.Config{
		BaseURL: *baseURL,
		Weeks:   *weeks,
		Seed:    *seed,
		Sample:  *sample,
		Missing: *missing,
		Timeout: *timeout,
		Verbose: *verbose,
		Keep:    *keep,
	}
	_, err := seeddata.Run(ctx, cfg)
	cancel()
	if err != nil {
		logger.Get().Error(context.Background(), "seed run failed", logger.Error(err))
		os.Exit(1)
	}
}
