package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/display"
	"github.com/backmassage/splitscreen/internal/ffmpeg"
	"github.com/backmassage/splitscreen/internal/logging"
	"github.com/backmassage/splitscreen/internal/planner"
	"github.com/backmassage/splitscreen/internal/probe"
	"github.com/backmassage/splitscreen/internal/sysinfo"
)

const minFileSize = 1000

// Result holds the outcome of a successful run.
type Result struct {
	OutputPath  string
	Plan        *planner.ProcessingPlan
	Elapsed     time.Duration
	OutputBytes int64
}

// Run is the top-level entry point: validate -> probe (parallel) -> plan ->
// execute -> report. Returns the result or the first fatal error, with the
// offending input named.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (*Result, error) {
	if err := validateInput("video_1", cfg.Video1Path); err != nil {
		return nil, err
	}
	if err := validateInput("video_2", cfg.Video2Path); err != nil {
		return nil, err
	}

	// --- Resolve the encoder backend before planning ---
	accel := cfg.Accel
	if accel == config.AccelAuto {
		accel = ffmpeg.DetectAccel()
		log.Info("Hardware acceleration: %s", accel)
	}

	// --- Probe both inputs in parallel (independent, no shared state) ---
	meta1, meta2, err := probePair(ctx, cfg.Video1Path, cfg.Video2Path)
	if err != nil {
		return nil, err
	}

	log.Info("video_1: %s | %.2fs | audio=%t", meta1.Resolution(), meta1.Duration, meta1.HasAudio)
	log.Info("video_2: %s | %.2fs | audio=%t", meta2.Resolution(), meta2.Duration, meta2.HasAudio)

	// --- Build plan ---
	plan, err := planner.BuildPlan(meta1, meta2, planner.Options{
		Layout:         cfg.Layout,
		DurationSource: cfg.DurationSource,
		LoopVideos:     cfg.LoopVideos,
		AudioSource:    cfg.AudioSource,
		QualityPreset:  cfg.QualityPreset,
		Accel:          accel,
		CoreCount:      sysinfo.CoreCount(),
	})
	if err != nil {
		return nil, err
	}

	logPlan(cfg, log, plan)

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(os.TempDir(), "splitscreen-"+uuid.NewString()+".mp4")
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create output directory: %w", err)
	}

	if cfg.DryRun {
		log.Success("[DRY] Would encode -> %s", outputPath)
		log.Debug(cfg.Verbose, "Filter graph: %s", ffmpeg.RenderFilterGraph(plan))
		return &Result{OutputPath: outputPath, Plan: plan}, nil
	}

	// --- Execute, falling back to software when a hardware encode fails ---
	start := time.Now()
	log.Render("Encoding %s -> %s", plan.Encode.VideoCodec, filepath.Base(outputPath))

	if err := ffmpeg.Execute(ctx, cfg, plan, outputPath); err != nil {
		if accel == config.AccelSoftware || ctx.Err() != nil {
			os.Remove(outputPath)
			return nil, err
		}

		log.Warn("Hardware encode failed (%s), retrying with software encoding", accel)
		os.Remove(outputPath)

		opts := planner.Options{
			Layout:         cfg.Layout,
			DurationSource: cfg.DurationSource,
			LoopVideos:     cfg.LoopVideos,
			AudioSource:    cfg.AudioSource,
			QualityPreset:  cfg.QualityPreset,
			Accel:          config.AccelSoftware,
			CoreCount:      sysinfo.CoreCount(),
		}
		plan, err = planner.BuildPlan(meta1, meta2, opts)
		if err != nil {
			return nil, err
		}
		if err := ffmpeg.Execute(ctx, cfg, plan, outputPath); err != nil {
			os.Remove(outputPath)
			return nil, err
		}
	}

	elapsed := time.Since(start)
	var outSize int64
	if fi, err := os.Stat(outputPath); err == nil {
		outSize = fi.Size()
	}

	log.Success("Combined in %s (%s, %s)",
		display.FormatDuration(elapsed.Seconds()),
		display.FormatDuration(plan.Timeline.TargetDuration),
		display.FormatBytes(outSize))

	return &Result{
		OutputPath:  outputPath,
		Plan:        plan,
		Elapsed:     elapsed,
		OutputBytes: outSize,
	}, nil
}

// validateInput checks that an input file exists and is plausibly a video.
func validateInput(name, path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: file not found: %s", name, path)
	}
	if fi.Size() < minFileSize {
		return fmt.Errorf("%s: file too small (possibly corrupt): %s", name, path)
	}
	return nil
}

// probePair probes both inputs concurrently. The planner's inputs are two
// independent VideoMeta values; parallelism here is a scheduling
// optimization only.
func probePair(ctx context.Context, path1, path2 string) (probe.VideoMeta, probe.VideoMeta, error) {
	var (
		wg           sync.WaitGroup
		meta1, meta2 probe.VideoMeta
		err1, err2   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		meta1, err1 = probe.Probe(ctx, path1)
	}()
	go func() {
		defer wg.Done()
		meta2, err2 = probe.Probe(ctx, path2)
	}()
	wg.Wait()

	if err1 != nil {
		return probe.VideoMeta{}, probe.VideoMeta{}, fmt.Errorf("video_1: %w", err1)
	}
	if err2 != nil {
		return probe.VideoMeta{}, probe.VideoMeta{}, fmt.Errorf("video_2: %w", err2)
	}
	return meta1, meta2, nil
}

// logPlan reports the assembled plan: canvas, per-input transforms, timeline
// handling, audio selection, and any warnings.
func logPlan(cfg *config.Config, log *logging.Logger, plan *planner.ProcessingPlan) {
	log.Info("Layout: %s | canvas %dx%d (halves %dx%d)",
		plan.Layout, plan.Canvas.Width, plan.Canvas.Height, plan.Half.Width, plan.Half.Height)

	for i := 0; i < 2; i++ {
		sp := plan.Scale[i]
		it := plan.Timeline.Inputs[i]
		label := fmt.Sprintf("video_%d", i+1)

		mode := "trim"
		if it.Loop {
			mode = "loop"
		}
		log.Debug(cfg.Verbose, "  %s: %dx%d +%d+%d | %s to %.2fs | %d stages",
			label, sp.TargetWidth, sp.TargetHeight, sp.PadLeft, sp.PadTop,
			mode, it.TrimTo, len(plan.InputStages[i]))
	}

	if plan.Audio.Silent {
		log.Info("Audio: silent stereo track")
	} else {
		log.Info("Audio: video_%d", plan.Audio.Source+1)
	}
	log.Debug(cfg.Verbose, "Encoder: %s, %d threads, %d fps", plan.Encode.VideoCodec, plan.Encode.Threads, plan.Encode.FrameRate)

	for _, w := range plan.Warnings {
		switch w {
		case planner.WarnAudioMissingFallback:
			log.Warn("Chosen audio source has no audio stream; substituting silence")
		case planner.WarnDurationMismatchShortened:
			log.Warn("Looping disabled and one input is shorter; its stream stops early")
		}
	}
}
