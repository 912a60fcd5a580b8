package probe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProbeJSON = `{
	"streams": [
		{
			"codec_type": "video",
			"width": 1920,
			"height": 1080,
			"r_frame_rate": "30000/1001",
			"avg_frame_rate": "30000/1001"
		},
		{
			"codec_type": "audio"
		}
	],
	"format": {
		"duration": "12.512000"
	}
}`

func TestParseJSON_FullStream(t *testing.T) {
	meta, err := ParseJSON([]byte(sampleProbeJSON))
	require.NoError(t, err)

	assert.Equal(t, 1920, meta.Width)
	assert.Equal(t, 1080, meta.Height)
	assert.InDelta(t, 12.512, meta.Duration, 0.001)
	assert.InDelta(t, 29.97, meta.FPS, 0.01)
	assert.True(t, meta.HasAudio)
}

func TestParseJSON_NoAudioStream(t *testing.T) {
	data := `{
		"streams": [
			{"codec_type": "video", "width": 640, "height": 360, "r_frame_rate": "25/1"}
		],
		"format": {"duration": "3.0"}
	}`
	meta, err := ParseJSON([]byte(data))
	require.NoError(t, err)

	assert.False(t, meta.HasAudio)
	assert.Equal(t, 25.0, meta.FPS)
}

func TestParseJSON_FirstVideoStreamWins(t *testing.T) {
	data := `{
		"streams": [
			{"codec_type": "video", "width": 1280, "height": 720, "r_frame_rate": "30/1"},
			{"codec_type": "video", "width": 320, "height": 240, "r_frame_rate": "15/1"}
		],
		"format": {"duration": "1.0"}
	}`
	meta, err := ParseJSON([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, 1280, meta.Width)
	assert.Equal(t, 720, meta.Height)
}

func TestParseJSON_NoVideoStream(t *testing.T) {
	data := `{
		"streams": [{"codec_type": "audio"}],
		"format": {"duration": "3.0"}
	}`
	_, err := ParseJSON([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no video stream found")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	_, err := ParseJSON([]byte("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse ffprobe JSON")
}

func TestParseJSON_FrameRateFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		rRate   string
		avgRate string
		want    float64
	}{
		{"ratio", "30000/1001", "", 29.97},
		{"plain number", "24", "", 24},
		{"zero denominator falls to avg", "0/0", "60/1", 60},
		{"garbage falls to avg", "n/a", "25/1", 25},
		{"both empty assumes default", "", "", defaultFPS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `{
				"streams": [
					{"codec_type": "video", "width": 640, "height": 360,
					 "r_frame_rate": "` + tt.rRate + `", "avg_frame_rate": "` + tt.avgRate + `"}
				],
				"format": {"duration": "1.0"}
			}`
			meta, err := ParseJSON([]byte(data))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, meta.FPS, 0.01)
		})
	}
}

func TestProbeError_Unwrap(t *testing.T) {
	inner := errors.New("exit status 1")
	err := &ProbeError{Path: "/in/a.mp4", Err: inner}

	assert.Contains(t, err.Error(), "/in/a.mp4")
	assert.ErrorIs(t, err, inner)
}

func TestVideoMeta_Resolution(t *testing.T) {
	m := VideoMeta{Width: 1920, Height: 1080}
	assert.Equal(t, "1920x1080", m.Resolution())
}
