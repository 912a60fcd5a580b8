// Command splitscreen combines two videos into one split-screen MP4.
// It parses flags, validates config, and either runs system check (--check)
// or the combine pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/splitscreen/internal/check"
	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/display"
	"github.com/backmassage/splitscreen/internal/logging"
	"github.com/backmassage/splitscreen/internal/pipeline"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	// 1. Load config from defaults and CLI flags; exit on parse or validation error.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "splitscreen: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "splitscreen: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "splitscreen: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	display.PrintBanner()

	// 2. If user asked for system check, run it and exit successfully.
	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		os.Exit(0)
	}

	log.Info("=== Splitscreen v%s ===", version)
	log.Info("video_1: %s", cfg.Video1Path)
	log.Info("video_2: %s", cfg.Video2Path)
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}

	// 3. Ensure ffmpeg/ffprobe and the chosen encoder are available; fail fast otherwise.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	// 4. Run the pipeline, cancelling cleanly on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.Run(ctx, &cfg, log)
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	fmt.Println(result.OutputPath)
}
