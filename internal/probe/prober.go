package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// defaultFPS is assumed when a stream reports no parseable frame rate.
const defaultFPS = 30

// Probe runs a single ffprobe JSON call against path and returns the
// essential metadata for planning. One call per input covers dimensions,
// duration, frame rate, and audio presence.
func Probe(ctx context.Context, path string) (VideoMeta, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return VideoMeta{}, &ProbeError{Path: path, Err: err}
	}

	meta, err := ParseJSON(out)
	if err != nil {
		return VideoMeta{}, &ProbeError{Path: path, Err: err}
	}
	return meta, nil
}

// ParseJSON converts raw ffprobe JSON output into a VideoMeta.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (VideoMeta, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return VideoMeta{}, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildMeta(&raw)
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	CodecType    string `json:"codec_type"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	RFrameRate   string `json:"r_frame_rate"`
	AvgFrameRate string `json:"avg_frame_rate"`
}

// --- Conversion from wire types to domain types ---

func buildMeta(raw *ffprobeOutput) (VideoMeta, error) {
	var video *ffprobeStream
	hasAudio := false

	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			if video == nil {
				video = s
			}
		case "audio":
			hasAudio = true
		}
	}

	if video == nil {
		return VideoMeta{}, errors.New("no video stream found")
	}

	fps := parseFrameRate(video.RFrameRate)
	if fps <= 0 {
		fps = parseFrameRate(video.AvgFrameRate)
	}
	if fps <= 0 {
		fps = defaultFPS
	}

	return VideoMeta{
		Width:    video.Width,
		Height:   video.Height,
		Duration: parseFloat(raw.Format.Duration),
		FPS:      fps,
		HasAudio: hasAudio,
	}, nil
}

// parseFrameRate parses ffprobe's ratio form ("30000/1001") or a plain
// number. Returns 0 on anything unparseable, including a zero denominator.
func parseFrameRate(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(den, 64)
		if errN != nil || errD != nil || d == 0 {
			return 0
		}
		return n / d
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
