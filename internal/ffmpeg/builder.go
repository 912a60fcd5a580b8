package ffmpeg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/planner"
)

// silentAudioSource is the lavfi input substituted when the plan's audio is
// silent. It is added as input index 2, after the two video files.
const silentAudioSource = "anullsrc=channel_layout=stereo:sample_rate=48000"

// Build constructs the complete ffmpeg argument slice for a plan. The
// command follows a fixed skeleton: preamble, inputs, filter_complex,
// stream maps, timing, video codec, audio codec, container opts, output.
func Build(cfg *config.Config, plan *planner.ProcessingPlan, outputPath string) []string {
	args := make([]string, 0, 64)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")

	// Loglevel: info when verbose, otherwise error.
	if cfg.Verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// Stats for FPS display.
	if cfg.Verbose || cfg.ShowFfmpegFPS {
		args = append(args, "-stats", "-stats_period", "1")
	}

	args = append(args, "-threads", strconv.Itoa(plan.Encode.Threads))

	// --- Inputs ---
	args = append(args, "-i", cfg.Video1Path, "-i", cfg.Video2Path)
	if plan.Audio.Silent {
		args = append(args, "-f", "lavfi", "-i", silentAudioSource)
	}

	// --- Filter graph ---
	args = append(args, "-filter_complex", RenderFilterGraph(plan))

	// --- Stream maps ---
	args = append(args, "-map", "[vout]")
	if plan.Audio.Silent {
		args = append(args, "-map", "2:a:0")
	} else {
		args = append(args, "-map", fmt.Sprintf("%d:a:0", plan.Audio.Source))
	}

	// --- Output timing: exact duration, constant frame rate ---
	args = append(args,
		"-t", formatSeconds(plan.Timeline.TargetDuration),
		"-vsync", "cfr",
		"-r", strconv.Itoa(plan.Encode.FrameRate),
		"-avoid_negative_ts", "make_zero",
	)

	// --- Video codec (preset/accel bundle resolved at plan time) ---
	args = append(args, "-c:v", plan.Encode.VideoCodec)
	args = append(args, plan.Encode.VideoArgs...)

	// --- Audio codec ---
	args = append(args,
		"-c:a", plan.Encode.AudioCodec,
		"-b:a", plan.Encode.AudioBitrate,
		"-ac", strconv.Itoa(plan.Encode.AudioChannels),
		"-ar", strconv.Itoa(plan.Encode.AudioSampleRate),
	)

	// --- Container opts ---
	args = append(args, "-movflags", "+faststart", "-fflags", "+genpts")

	// --- Output ---
	args = append(args, outputPath)

	return args
}

// RenderFilterGraph renders the plan's per-input stage lists and composition
// stage into an ffmpeg filter_complex string:
//
//	[0:v]<stages>,fps=30[v0];[1:v]<stages>,fps=30[v1];[v0][v1]hstack=inputs=2[vout]
//
// Exported so tests and dry-run output can inspect the exact graph.
func RenderFilterGraph(plan *planner.ProcessingPlan) string {
	chains := make([]string, 0, 3)
	for i := 0; i < 2; i++ {
		chains = append(chains, renderChain(i, plan.InputStages[i], plan.Encode.FrameRate))
	}
	chains = append(chains,
		fmt.Sprintf("[v0][v1]%s=inputs=2[vout]", plan.Composite))
	return strings.Join(chains, ";")
}

// renderChain renders one input's stage list. The fps normalization filter
// is always appended: stacking requires both inputs at the same constant
// rate regardless of how many plan stages survived identity omission.
func renderChain(idx int, stages []planner.Stage, fps int) string {
	filters := make([]string, 0, len(stages)+1)
	for _, st := range stages {
		filters = append(filters, renderStage(st))
	}
	filters = append(filters, fmt.Sprintf("fps=%d", fps))
	return fmt.Sprintf("[%d:v]%s[v%d]", idx, strings.Join(filters, ","), idx)
}

func renderStage(st planner.Stage) string {
	switch st.Kind {
	case planner.StageLoop:
		// Repeat indefinitely; the trim stage and the output -t cut exactly
		// at the target duration.
		return "loop=loop=-1:size=32767:start=0"
	case planner.StageTrim:
		return fmt.Sprintf("trim=duration=%s,setpts=PTS-STARTPTS", formatSeconds(st.Duration))
	case planner.StageScale:
		return fmt.Sprintf("scale=%d:%d:flags=fast_bilinear", st.Width, st.Height)
	case planner.StagePad:
		return fmt.Sprintf("pad=%d:%d:%d:%d:color=black", st.Width, st.Height, st.PadLeft, st.PadTop)
	}
	return ""
}

// formatSeconds renders a duration with millisecond precision and no
// trailing zeros beyond what ffmpeg needs.
func formatSeconds(secs float64) string {
	return strconv.FormatFloat(secs, 'f', 3, 64)
}
