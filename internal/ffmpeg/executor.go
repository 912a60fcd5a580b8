package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/planner"
)

// EncodeError wraps a failed ffmpeg run with its captured stderr. The core
// does not retry encode failures beyond the accel fallback; any further
// retry policy belongs to the caller.
type EncodeError struct {
	Err    error
	Stderr string
}

func (e *EncodeError) Error() string {
	tail := stderrTail(e.Stderr, 5)
	if tail == "" {
		return fmt.Sprintf("ffmpeg: %v", e.Err)
	}
	return fmt.Sprintf("ffmpeg: %v\n%s", e.Err, tail)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Execute builds and runs the ffmpeg command for a plan, bounded by the
// configured encode timeout. When verbose or show-fps is enabled, stderr is
// tee'd to os.Stderr in real time; otherwise it is captured silently and
// attached to the returned EncodeError on failure.
func Execute(ctx context.Context, cfg *config.Config, plan *planner.ProcessingPlan, outputPath string) error {
	if cfg.EncodeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.EncodeTimeout)
		defer cancel()
	}

	args := Build(cfg, plan, outputPath)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if cfg.Verbose || cfg.ShowFfmpegFPS {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("timed out after %s: %w", cfg.EncodeTimeout, err)
		}
		return &EncodeError{Err: err, Stderr: stderrBuf.String()}
	}
	return nil
}

// stderrTail returns the last n non-empty lines of captured stderr.
func stderrTail(stderr string, n int) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return ""
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
