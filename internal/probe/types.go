package probe

import "fmt"

// VideoMeta holds the facts the planner needs about one input: picture
// dimensions, container duration, frame rate, and whether any audio stream
// is present. Produced once per input by Probe and never mutated.
type VideoMeta struct {
	Width    int
	Height   int
	Duration float64 // seconds
	FPS      float64
	HasAudio bool
}

// Resolution returns "WxH", or "unknown" when dimensions are missing.
func (m VideoMeta) Resolution() string {
	if m.Width <= 0 || m.Height <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// ProbeError wraps an ffprobe failure for one input file. Probe failures are
// fatal and not retried: re-probing an unreadable file will not help.
type ProbeError struct {
	Path string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %q: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }
