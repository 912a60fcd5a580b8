package ffmpeg

import (
	"os/exec"

	"github.com/backmassage/splitscreen/internal/config"
)

// Hardware backends probed by DetectAccel, in order of preference.
var accelCandidates = []struct {
	mode  config.AccelMode
	codec string
}{
	{config.AccelNVENC, "h264_nvenc"},
	{config.AccelQSV, "h264_qsv"},
	{config.AccelVideoToolbox, "h264_videotoolbox"},
}

// DetectAccel resolves AccelAuto to a concrete backend by running a short
// test encode against each hardware codec in preference order. A backend
// counts as available only when the encode actually succeeds; listing the
// encoder is not enough on machines without the matching device. Falls back
// to software when nothing passes.
func DetectAccel() config.AccelMode {
	for _, c := range accelCandidates {
		// NVENC needs a working driver; nvidia-smi is a cheap pre-check
		// before spending a test encode.
		if c.mode == config.AccelNVENC && !runSilent("nvidia-smi") {
			continue
		}
		if testEncode(c.codec) {
			return c.mode
		}
	}
	return config.AccelSoftware
}

// testEncode runs a minimal one-second synthetic encode with the given codec.
func testEncode(codec string) bool {
	return runSilent("ffmpeg",
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "testsrc=duration=1:size=320x240:rate=1",
		"-c:v", codec,
		"-f", "null", "-",
	)
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
