package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/splitscreen/internal/config"
)

func TestVideoEncoderArgs_Codecs(t *testing.T) {
	tests := []struct {
		name  string
		accel config.AccelMode
		codec string
	}{
		{"software", config.AccelSoftware, "libx264"},
		{"nvenc", config.AccelNVENC, "h264_nvenc"},
		{"qsv", config.AccelQSV, "h264_qsv"},
		{"videotoolbox", config.AccelVideoToolbox, "h264_videotoolbox"},
		{"auto maps to software", config.AccelAuto, "libx264"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, args := VideoEncoderArgs(tt.accel, config.PresetFast)
			assert.Equal(t, tt.codec, codec)
			assert.NotEmpty(t, args)
		})
	}
}

func TestVideoEncoderArgs_SoftwarePresets(t *testing.T) {
	_, fastest := VideoEncoderArgs(config.AccelSoftware, config.PresetFastest)
	assert.Equal(t, []string{"-preset", "ultrafast", "-crf", "28", "-x264-params", x264Params}, fastest)

	_, fast := VideoEncoderArgs(config.AccelSoftware, config.PresetFast)
	assert.Equal(t, []string{"-preset", "veryfast", "-crf", "25", "-x264-params", x264Params}, fast)

	_, balanced := VideoEncoderArgs(config.AccelSoftware, config.PresetBalanced)
	assert.Equal(t, []string{"-preset", "fast", "-crf", "23", "-x264-params", x264Params}, balanced)
}

func TestVideoEncoderArgs_NvencQualityLadder(t *testing.T) {
	_, fastest := VideoEncoderArgs(config.AccelNVENC, config.PresetFastest)
	assert.Contains(t, fastest, "p1")
	_, balanced := VideoEncoderArgs(config.AccelNVENC, config.PresetBalanced)
	assert.Contains(t, balanced, "p4")
}
