package planner

import "github.com/backmassage/splitscreen/internal/config"

// Encoder argument bundles per acceleration backend and quality preset.
// The planner treats these as opaque lookups; the values follow the usual
// H.264 speed/quality ladders for each encoder family.

// x264Params pins GOP behavior for predictable split-screen seeking.
const x264Params = "scenecut=0:bframes=2:b-adapt=1:ref=1"

type presetArgs struct {
	fastest  []string
	fast     []string
	balanced []string
}

var softwareArgs = presetArgs{
	fastest:  []string{"-preset", "ultrafast", "-crf", "28", "-x264-params", x264Params},
	fast:     []string{"-preset", "veryfast", "-crf", "25", "-x264-params", x264Params},
	balanced: []string{"-preset", "fast", "-crf", "23", "-x264-params", x264Params},
}

var nvencArgs = presetArgs{
	fastest:  []string{"-rc", "vbr", "-gpu", "0", "-preset", "p1", "-cq", "28"},
	fast:     []string{"-rc", "vbr", "-gpu", "0", "-preset", "p3", "-cq", "25"},
	balanced: []string{"-rc", "vbr", "-gpu", "0", "-preset", "p4", "-cq", "23"},
}

var qsvArgs = presetArgs{
	fastest:  []string{"-preset", "veryfast", "-global_quality", "28"},
	fast:     []string{"-preset", "faster", "-global_quality", "25"},
	balanced: []string{"-preset", "fast", "-global_quality", "23"},
}

var videotoolboxArgs = presetArgs{
	fastest:  []string{"-realtime", "1", "-q:v", "80"},
	fast:     []string{"-realtime", "1", "-q:v", "65"},
	balanced: []string{"-realtime", "1", "-q:v", "50"},
}

// VideoEncoderArgs resolves the codec name and argument bundle for the given
// backend and preset. AccelAuto must be resolved by the caller before
// planning; it maps to the software encoder here so a plan is always valid.
func VideoEncoderArgs(accel config.AccelMode, preset config.Preset) (string, []string) {
	var codec string
	var table presetArgs

	switch accel {
	case config.AccelNVENC:
		codec, table = "h264_nvenc", nvencArgs
	case config.AccelQSV:
		codec, table = "h264_qsv", qsvArgs
	case config.AccelVideoToolbox:
		codec, table = "h264_videotoolbox", videotoolboxArgs
	default:
		codec, table = "libx264", softwareArgs
	}

	switch preset {
	case config.PresetFastest:
		return codec, table.fastest
	case config.PresetBalanced:
		return codec, table.balanced
	default:
		return codec, table.fast
	}
}
