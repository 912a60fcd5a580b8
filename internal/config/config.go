// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation for the splitscreen combiner.
package config

import (
	"errors"
	"time"
)

// --- Enum types for validated string fields ---

// Layout selects how the two inputs tile the output canvas.
type Layout string

const (
	LayoutSideBySide Layout = "side-by-side" // Input 1 left, input 2 right (default).
	LayoutTopBottom  Layout = "top-bottom"   // Input 1 top, input 2 bottom.
)

// InputRef names one of the two inputs for source-selection options.
type InputRef string

const (
	Video1 InputRef = "video1" // First positional input (default source).
	Video2 InputRef = "video2" // Second positional input.
)

// Preset is the speed/quality tradeoff for the encode.
type Preset string

const (
	PresetFastest  Preset = "fastest"
	PresetFast     Preset = "fast" // Default.
	PresetBalanced Preset = "balanced"
)

// AccelMode selects the H.264 encoder backend.
type AccelMode string

const (
	AccelAuto         AccelMode = "auto" // Detect at startup, fall back to software (default).
	AccelNVENC        AccelMode = "nvenc"
	AccelQSV          AccelMode = "qsv"
	AccelVideoToolbox AccelMode = "videotoolbox"
	AccelSoftware     AccelMode = "software"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (set from positional args and -o).
	Video1Path string
	Video2Path string
	OutputPath string // Empty: pipeline picks a temp file.

	// Composition options.
	Layout         Layout
	DurationSource InputRef // Whose duration becomes the output duration.
	LoopVideos     bool     // Default: true. Cleared by --no-loop.
	AudioSource    InputRef // Whose audio passes through.

	// Encoding.
	QualityPreset Preset
	Accel         AccelMode
	EncodeTimeout time.Duration // Default: 10m. Bound on one ffmpeg run.

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose       bool
	ShowFfmpegFPS bool // Default: true.
	ColorMode     ColorMode
	LogFile       string // Optional log file path.
	CheckOnly     bool   // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all option defaults matching the
// documented CLI contract. Used as the base before [ParseFlags] applies
// overrides.
func DefaultConfig() Config {
	return Config{
		Layout:         LayoutSideBySide,
		DurationSource: Video1,
		LoopVideos:     true,
		AudioSource:    Video1,
		QualityPreset:  PresetFast,
		Accel:          AccelAuto,
		EncodeTimeout:  10 * time.Minute,
		ShowFfmpegFPS:  true,
		ColorMode:      ColorAuto,
	}
}

// Validate checks that enum fields hold valid values. When not in CheckOnly
// mode it also requires both input paths.
func (c *Config) Validate() error {
	switch c.Layout {
	case LayoutSideBySide, LayoutTopBottom:
		// valid
	default:
		return errors.New("invalid layout (use 'side-by-side' or 'top-bottom')")
	}

	switch c.DurationSource {
	case Video1, Video2:
		// valid
	default:
		return errors.New("invalid duration source (use 'video1' or 'video2')")
	}

	switch c.AudioSource {
	case Video1, Video2:
		// valid
	default:
		return errors.New("invalid audio source (use 'video1' or 'video2')")
	}

	switch c.QualityPreset {
	case PresetFastest, PresetFast, PresetBalanced:
		// valid
	default:
		return errors.New("invalid quality preset (use 'fastest', 'fast', or 'balanced')")
	}

	switch c.Accel {
	case AccelAuto, AccelNVENC, AccelQSV, AccelVideoToolbox, AccelSoftware:
		// valid
	default:
		return errors.New("invalid accel mode (use 'auto', 'nvenc', 'qsv', 'videotoolbox', or 'software')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.Video1Path == "" || c.Video2Path == "" {
		return errors.New("need exactly video_1 and video_2")
	}
	return nil
}
