package planner

import (
	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/probe"
)

// Fixed output contract: MP4, H.264 video, AAC stereo 128k at 48 kHz,
// 30 fps constant frame rate, thread hint capped at 16.
const (
	outputContainer  = "mp4"
	outputFrameRate  = 30
	audioCodec       = "aac"
	audioBitrate     = "128k"
	audioChannels    = 2
	audioSampleRate  = 48000
	maxEncodeThreads = 16
)

// Options carries the user choices and injected environment for one planning
// run. CoreCount is passed in (rather than read from the process) so the
// planner stays pure and deterministic.
type Options struct {
	Layout         config.Layout
	DurationSource config.InputRef
	LoopVideos     bool
	AudioSource    config.InputRef
	QualityPreset  config.Preset
	Accel          config.AccelMode
	CoreCount      int
}

// BuildPlan is the central entry point: it runs the geometry and timeline
// planners and assembles their outputs into a complete ProcessingPlan.
// Calling it twice with identical inputs yields an identical plan.
func BuildPlan(meta1, meta2 probe.VideoMeta, opts Options) (*ProcessingPlan, error) {
	canvas, s1, s2, err := PlanGeometry(meta1, meta2, opts.Layout)
	if err != nil {
		return nil, err
	}

	tl, err := PlanTimeline(meta1, meta2, opts.DurationSource, opts.LoopVideos)
	if err != nil {
		return nil, err
	}

	return Assemble(canvas, [2]ScalePlan{s1, s2}, tl, [2]probe.VideoMeta{meta1, meta2}, opts), nil
}

// Assemble combines the geometry and timeline plans with the audio and
// quality options into the final instruction object. It is pure: one call,
// one deterministic plan, no partial states.
func Assemble(canvas CanvasPlan, scales [2]ScalePlan, tl TimelinePlan, metas [2]probe.VideoMeta, opts Options) *ProcessingPlan {
	box := HalfBoxFor(opts.Layout)

	plan := &ProcessingPlan{
		Layout:    opts.Layout,
		Canvas:    canvas,
		Half:      box,
		Scale:     scales,
		Timeline:  tl,
		Composite: compositeFor(opts.Layout),
	}

	for i := 0; i < 2; i++ {
		plan.InputStages[i] = inputStages(tl.Inputs[i], metas[i], scales[i], box)
	}

	// Exactly one audio stream passes through. A chosen source without audio
	// falls back to silence; the run never fails on missing audio.
	audioIdx := 0
	if opts.AudioSource == config.Video2 {
		audioIdx = 1
	}
	if metas[audioIdx].HasAudio {
		plan.Audio = AudioPlan{Source: audioIdx}
	} else {
		plan.Audio = AudioPlan{Silent: true}
		plan.Warnings = append(plan.Warnings, WarnAudioMissingFallback)
	}

	if tl.Shortened {
		plan.Warnings = append(plan.Warnings, WarnDurationMismatchShortened)
	}

	codec, videoArgs := VideoEncoderArgs(opts.Accel, opts.QualityPreset)
	plan.Encode = EncodeParams{
		VideoCodec:      codec,
		VideoArgs:       videoArgs,
		AudioCodec:      audioCodec,
		AudioBitrate:    audioBitrate,
		AudioChannels:   audioChannels,
		AudioSampleRate: audioSampleRate,
		Container:       outputContainer,
		FrameRate:       outputFrameRate,
		Threads:         threadHint(opts.CoreCount),
	}

	return plan
}

// inputStages builds the ordered transform list for one input:
// [loop] -> trim -> [scale] -> [pad]. Identity stages are omitted so the
// resulting filter chain carries no no-op elements.
func inputStages(it InputTimeline, meta probe.VideoMeta, sp ScalePlan, box HalfBox) []Stage {
	var stages []Stage

	if it.Loop {
		stages = append(stages, Stage{Kind: StageLoop})
	}

	// A trim equal to the input's full native length without looping changes
	// nothing and is skipped; the output-level duration still pins the cut.
	if it.Loop || it.TrimTo < meta.Duration {
		stages = append(stages, Stage{Kind: StageTrim, Duration: it.TrimTo})
	}

	if sp.TargetWidth != meta.Width || sp.TargetHeight != meta.Height {
		stages = append(stages, Stage{Kind: StageScale, Width: sp.TargetWidth, Height: sp.TargetHeight})
	}

	if sp.TargetWidth != box.Width || sp.TargetHeight != box.Height {
		stages = append(stages, Stage{
			Kind:    StagePad,
			Width:   box.Width,
			Height:  box.Height,
			PadLeft: sp.PadLeft,
			PadTop:  sp.PadTop,
		})
	}

	return stages
}

func compositeFor(layout config.Layout) CompositeOp {
	if layout == config.LayoutTopBottom {
		return CompositeVStack
	}
	return CompositeHStack
}

// threadHint bounds the encoder thread count by the injected core count,
// never unbounded.
func threadHint(cores int) int {
	if cores < 1 {
		cores = 1
	}
	if cores > maxEncodeThreads {
		return maxEncodeThreads
	}
	return cores
}
