package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/splitscreen/internal/config"
)

func TestPlanTimeline_LongerInputTrimmed(t *testing.T) {
	// Second input is longer than the target: simple trim, no loop.
	tp, err := PlanTimeline(meta(1920, 1080, 10), meta(640, 360, 20), config.Video1, true)
	require.NoError(t, err)

	assert.Equal(t, 10.0, tp.TargetDuration)
	assert.Equal(t, InputTimeline{Loop: false, TrimTo: 10}, tp.Inputs[0])
	assert.Equal(t, InputTimeline{Loop: false, TrimTo: 10}, tp.Inputs[1])
	assert.False(t, tp.Shortened)
}

func TestPlanTimeline_ShorterInputLooped(t *testing.T) {
	// 3s input against a 5s target: looped and truncated exactly at 5s,
	// not rounded up to a whole repetition.
	tp, err := PlanTimeline(meta(1280, 720, 5), meta(1280, 720, 3), config.Video1, true)
	require.NoError(t, err)

	assert.Equal(t, 5.0, tp.TargetDuration)
	assert.Equal(t, InputTimeline{Loop: true, TrimTo: 5}, tp.Inputs[1])
	assert.False(t, tp.Shortened)
}

func TestPlanTimeline_LoopDisabledShortens(t *testing.T) {
	tp, err := PlanTimeline(meta(1280, 720, 5), meta(1280, 720, 3), config.Video1, false)
	require.NoError(t, err)

	assert.Equal(t, 5.0, tp.TargetDuration)
	assert.Equal(t, InputTimeline{Loop: false, TrimTo: 3}, tp.Inputs[1])
	assert.True(t, tp.Shortened)
}

func TestPlanTimeline_Video2Source(t *testing.T) {
	tp, err := PlanTimeline(meta(1280, 720, 5), meta(1280, 720, 8), config.Video2, true)
	require.NoError(t, err)

	assert.Equal(t, 8.0, tp.TargetDuration)
	assert.Equal(t, InputTimeline{Loop: true, TrimTo: 8}, tp.Inputs[0])
	assert.Equal(t, InputTimeline{Loop: false, TrimTo: 8}, tp.Inputs[1])
}

func TestPlanTimeline_EqualDurations(t *testing.T) {
	tp, err := PlanTimeline(meta(1280, 720, 7), meta(1280, 720, 7), config.Video1, true)
	require.NoError(t, err)

	assert.Equal(t, 7.0, tp.TargetDuration)
	for i := 0; i < 2; i++ {
		assert.False(t, tp.Inputs[i].Loop)
		assert.Equal(t, 7.0, tp.Inputs[i].TrimTo)
	}
}

func TestPlanTimeline_InvalidDuration(t *testing.T) {
	tests := []struct {
		name      string
		d1, d2    float64
		wantInput InputID
	}{
		{"zero first", 0, 10, InputVideo1},
		{"negative second", 10, -1, InputVideo2},
		{"unmeasurable second", 10, 0, InputVideo2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanTimeline(meta(1280, 720, tt.d1), meta(1280, 720, tt.d2), config.Video1, true)
			require.Error(t, err)

			var terr *TimelineError
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, tt.wantInput, terr.Input)
			assert.Contains(t, err.Error(), tt.wantInput.String())
			assert.Contains(t, err.Error(), "invalid duration")
		})
	}
}
