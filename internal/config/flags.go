package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into composition, encoding, display, and utility.
// Negated flags (e.g. --no-loop) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// version is shown in --version and help; override at build time with -ldflags "-X main.version=...".
var version = "1.0.0-dev"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, missing positional args).
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("splitscreen", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineCompositionFlags(fs, cfg, &negated)
	defineEncodingFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "splitscreen v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noLoop -> LoopVideos=false) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noLoop      bool
	noFps       bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineCompositionFlags registers --layout, --duration-source, --no-loop, --audio-source, -o.
func defineCompositionFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.Var(&layoutValue{&cfg.Layout}, "layout", "Layout: side-by-side | top-bottom")
	fs.Var(&inputRefValue{&cfg.DurationSource, "duration source"}, "duration-source", "Duration source: video1 | video2")
	fs.BoolVar(&n.noLoop, "no-loop", false, "Do not loop the shorter video to match duration")
	fs.Var(&inputRefValue{&cfg.AudioSource, "audio source"}, "audio-source", "Audio source: video1 | video2")
	fs.StringVar(&cfg.OutputPath, "output", "", "Output MP4 path (default: temp file)")
	fs.StringVar(&cfg.OutputPath, "o", "", "Same as --output")
}

// defineEncodingFlags registers -q/--quality and --accel.
func defineEncodingFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&presetValue{&cfg.QualityPreset}, "quality", "Quality preset: fastest | fast | balanced")
	fs.Var(&presetValue{&cfg.QualityPreset}, "q", "Same as --quality")
	fs.Var(&accelValue{&cfg.Accel}, "accel", "Encoder backend: auto | nvenc | qsv | videotoolbox | software")
	fs.DurationVar(&cfg.EncodeTimeout, "timeout", cfg.EncodeTimeout, "Encode timeout (e.g. 10m)")
}

// defineDisplayFlags registers --color, --no-color, verbose, dry-run, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview the plan only; do not encode")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&n.noFps, "no-fps", false, "Do not show live ffmpeg FPS")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg (e.g. noLoop -> LoopVideos=false).
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noLoop {
		cfg.LoopVideos = false
	}
	if n.noFps {
		cfg.ShowFfmpegFPS = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Video1Path and Video2Path from the two positional args when not in CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("need exactly video_1 and video_2")
	}
	cfg.Video1Path = args[0]
	cfg.Video2Path = args[1]
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 40 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Splitscreen v" + version + " — two-video split-screen combiner"},
		{"", ""},
		{"  splitscreen [OPTIONS] <video_1> <video_2>", ""},
		{"", ""},
		{"Composition", ""},
		{"  --layout <side-by-side|top-bottom>", "Canvas layout (default: side-by-side)"},
		{"  --duration-source <video1|video2>", "Whose duration the output matches (default: video1)"},
		{"  --no-loop", "Do not loop the shorter video (output may cut short)"},
		{"  --audio-source <video1|video2>", "Whose audio passes through (default: video1)"},
		{"", ""},
		{"Encoding", ""},
		{"  -q, --quality <preset>", "fastest | fast | balanced (default: fast)"},
		{"  --accel <backend>", "auto | nvenc | qsv | videotoolbox | software (default: auto)"},
		{"  --timeout <duration>", "Encode timeout (default: 10m)"},
		{"  -o, --output <path>", "Output MP4 path (default: temp file)"},
		{"", ""},
		{"Display", ""},
		{"  -d, --dry-run", "Preview the plan only; do not encode"},
		{"  --no-fps", "Disable live ffmpeg FPS"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, encoders, AAC)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so we can use enum types (Layout, InputRef, Preset, AccelMode) with flag.Var.

type layoutValue struct{ p *Layout }

func (l *layoutValue) String() string { return string(*l.p) }
func (l *layoutValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "side-by-side", "sbs":
		*l.p = LayoutSideBySide
	case "top-bottom", "tb":
		*l.p = LayoutTopBottom
	default:
		return fmt.Errorf("invalid layout %q (use 'side-by-side' or 'top-bottom')", s)
	}
	return nil
}

type inputRefValue struct {
	p    *InputRef
	name string
}

func (i *inputRefValue) String() string { return string(*i.p) }
func (i *inputRefValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "video1", "video_1", "1":
		*i.p = Video1
	case "video2", "video_2", "2":
		*i.p = Video2
	default:
		return fmt.Errorf("invalid %s %q (use 'video1' or 'video2')", i.name, s)
	}
	return nil
}

type presetValue struct{ p *Preset }

func (p *presetValue) String() string { return string(*p.p) }
func (p *presetValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "fastest":
		*p.p = PresetFastest
	case "fast":
		*p.p = PresetFast
	case "balanced":
		*p.p = PresetBalanced
	default:
		return fmt.Errorf("invalid quality preset %q (use 'fastest', 'fast', or 'balanced')", s)
	}
	return nil
}

type accelValue struct{ p *AccelMode }

func (a *accelValue) String() string { return string(*a.p) }
func (a *accelValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*a.p = AccelAuto
	case "nvenc":
		*a.p = AccelNVENC
	case "qsv":
		*a.p = AccelQSV
	case "videotoolbox":
		*a.p = AccelVideoToolbox
	case "software", "cpu":
		*a.p = AccelSoftware
	default:
		return fmt.Errorf("invalid accel mode %q (use 'auto', 'nvenc', 'qsv', 'videotoolbox', or 'software')", s)
	}
	return nil
}
