package planner

import "github.com/backmassage/splitscreen/internal/config"

// Inputs are addressed by fixed index throughout the plan:
// 0 is video_1, 1 is video_2.

// StageKind identifies one per-input transform stage.
type StageKind int

const (
	StageLoop  StageKind = iota // Repeat the input indefinitely (trimmed later).
	StageTrim                   // Cut the stream at Duration seconds.
	StageScale                  // Resize to Width x Height.
	StagePad                    // Letterbox into a Width x Height box at PadLeft/PadTop.
)

func (k StageKind) String() string {
	switch k {
	case StageLoop:
		return "loop"
	case StageTrim:
		return "trim"
	case StageScale:
		return "scale"
	case StagePad:
		return "pad"
	}
	return "unknown"
}

// Stage is a tagged record; Kind selects which fields are meaningful.
// Identity stages are never emitted: a stage in the list always changes
// the stream.
type Stage struct {
	Kind StageKind

	Duration float64 // StageTrim: seconds to keep.

	Width  int // StageScale: target width. StagePad: box width.
	Height int // StageScale: target height. StagePad: box height.

	PadLeft int // StagePad: left offset of the video inside the box.
	PadTop  int // StagePad: top offset of the video inside the box.
}

// CompositeOp is how the two padded half-frames tile the canvas.
type CompositeOp int

const (
	CompositeHStack CompositeOp = iota // Side by side: input 1 left, input 2 right.
	CompositeVStack                    // Top and bottom: input 1 top, input 2 bottom.
)

func (c CompositeOp) String() string {
	if c == CompositeVStack {
		return "vstack"
	}
	return "hstack"
}

// HalfBox is the region one input is fitted into before composition.
// Two half boxes tile the canvas.
type HalfBox struct {
	Width  int
	Height int
}

// CanvasPlan is the output canvas size. Both dimensions are even and
// bounded by 1920x1080.
type CanvasPlan struct {
	Width  int
	Height int
}

// ScalePlan describes how one input fits its half box: the scaled size
// (aspect-preserving, even, never upscaled) and the symmetric letterbox
// offsets. TargetWidth/TargetHeight never exceed the half box, and at
// least one axis fills it unless the no-upscale clamp was hit.
type ScalePlan struct {
	TargetWidth  int
	TargetHeight int
	PadLeft      int
	PadTop       int
}

// InputTimeline is the duration handling for one input.
type InputTimeline struct {
	Loop   bool    // Repeat until TrimTo is covered, truncating mid-repetition.
	TrimTo float64 // Seconds of this input present in the output.
}

// TimelinePlan is the duration-matching decision for the pair.
type TimelinePlan struct {
	TargetDuration float64
	Inputs         [2]InputTimeline

	// Shortened is set when looping is disabled and the non-source input is
	// shorter than the target: its stream stops early in the composition.
	Shortened bool
}

// AudioPlan selects exactly one audio source for the output.
type AudioPlan struct {
	Source int  // Input index; meaningful only when Silent is false.
	Silent bool // Substitute a silent stereo track at the target duration.
}

// EncodeParams is the fixed output contract plus the preset-derived encoder
// knobs. The planner fills it by lookup; it makes no further decisions.
type EncodeParams struct {
	VideoCodec string   // e.g. "libx264", "h264_nvenc".
	VideoArgs  []string // Opaque preset/accel bundle, already in argv form.

	AudioCodec      string // "aac"
	AudioBitrate    string // "128k"
	AudioChannels   int    // 2
	AudioSampleRate int    // 48000

	Container string // "mp4"
	FrameRate int    // Output fps (constant frame rate).
	Threads   int    // Bounded thread hint, never unbounded.
}

// Warning flags a non-fatal condition recorded on the plan.
type Warning string

const (
	// WarnAudioMissingFallback: the chosen audio source has no audio stream;
	// a silent track is substituted.
	WarnAudioMissingFallback Warning = "audioMissingFallback"

	// WarnDurationMismatchShortened: looping is disabled and the non-source
	// input is shorter than the target duration; its stream stops early.
	WarnDurationMismatchShortened Warning = "durationMismatchShortened"
)

// ProcessingPlan is the complete, backend-agnostic instruction set for one
// run. It is assembled once, immutable afterwards, and fully self-describing:
// executing it requires only mechanical translation.
type ProcessingPlan struct {
	Layout config.Layout
	Canvas CanvasPlan
	Half   HalfBox

	Scale    [2]ScalePlan
	Timeline TimelinePlan

	// Per-input transform stages in execution order:
	// [loop] -> trim -> [scale] -> [pad], identity stages omitted.
	InputStages [2][]Stage

	Composite CompositeOp
	Audio     AudioPlan
	Encode    EncodeParams

	Warnings []Warning
}
