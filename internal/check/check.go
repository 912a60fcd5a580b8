// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation (CheckDeps) for ffmpeg, ffprobe, the H.264 encoder
// backends, and AAC.
package check

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/backmassage/splitscreen/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool or encoder is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
	ErrEncoderFailed   = errors.New("selected H.264 encoder failed its test encode")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of ffmpeg,
// ffprobe, the H.264 encoders, and the AAC encoder. Informational only —
// it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkFfmpeg(log)
	checkFfprobe(log)
	checkH264Encoders(log)
	checkAccelBackends(log)
	checkAAC(log)
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(log Logger) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Error("ffmpeg not found")
		return
	}
	cmd := exec.Command("ffmpeg", "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffmpeg: %s", firstLine)
}

func checkFfprobe(log Logger) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		log.Error("ffprobe not found")
		return
	}
	log.Success("ffprobe: found")
}

// checkH264Encoders lists all H.264-related encoders reported by ffmpeg.
func checkH264Encoders(log Logger) {
	log.Info("H.264 encoders:")
	cmd := exec.Command("ffmpeg", "-hide_banner", "-encoders")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "h264") || strings.Contains(lower, "264") {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}

// checkAccelBackends runs a test encode per hardware backend.
func checkAccelBackends(log Logger) {
	backends := []struct {
		label string
		codec string
	}{
		{"NVENC", "h264_nvenc"},
		{"QSV", "h264_qsv"},
		{"VideoToolbox", "h264_videotoolbox"},
	}
	for _, b := range backends {
		if testH264Encode(b.codec) {
			log.Success("%s works (%s)", b.label, b.codec)
		} else {
			log.Warn("%s unavailable", b.label)
		}
	}
	if testH264Encode("libx264") {
		log.Success("Software x264 works")
	} else {
		log.Error("Software x264 test encode failed")
	}
}

// checkAAC runs a minimal AAC encode to verify the audio encoder works.
func checkAAC(log Logger) {
	log.Info("Testing AAC encoder...")
	if runSilent("ffmpeg",
		"-hide_banner", "-nostdin",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", "aac", "-f", "null", "-",
	) {
		log.Success("AAC encoder works")
	} else {
		log.Error("AAC encoder test failed")
	}
}

// CheckDeps is the pre-pipeline validation: it verifies that ffmpeg and
// ffprobe are on PATH and that the selected encoder backend actually works.
// AccelAuto is not validated here; detection resolves it to a working
// backend (or software) before planning.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}

	codec := ""
	switch cfg.Accel {
	case config.AccelNVENC:
		codec = "h264_nvenc"
	case config.AccelQSV:
		codec = "h264_qsv"
	case config.AccelVideoToolbox:
		codec = "h264_videotoolbox"
	case config.AccelSoftware:
		codec = "libx264"
	default:
		return nil
	}

	if !testH264Encode(codec) {
		return fmt.Errorf("%w (%s)", ErrEncoderFailed, codec)
	}
	return nil
}

// --- internal helpers ---

// testH264Encode runs a minimal ffmpeg encode to verify the codec is usable.
func testH264Encode(codec string) bool {
	return runSilent("ffmpeg",
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
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
