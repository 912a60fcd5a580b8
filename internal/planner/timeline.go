package planner

import (
	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/probe"
)

// PlanTimeline computes the target output duration and each input's
// loop/trim handling.
//
// The designated duration source plays once at its native length. The other
// input is trimmed when longer; when shorter it is either looped and
// truncated exactly at the target (loopEnabled) or left at its native
// length, in which case its stream stops early and the plan is flagged
// Shortened.
func PlanTimeline(meta1, meta2 probe.VideoMeta, durationSource config.InputRef, loopEnabled bool) (TimelinePlan, error) {
	if meta1.Duration <= 0 {
		return TimelinePlan{}, &TimelineError{Input: InputVideo1, Duration: meta1.Duration}
	}
	if meta2.Duration <= 0 {
		return TimelinePlan{}, &TimelineError{Input: InputVideo2, Duration: meta2.Duration}
	}

	durations := [2]float64{meta1.Duration, meta2.Duration}
	srcIdx := 0
	if durationSource == config.Video2 {
		srcIdx = 1
	}
	otherIdx := 1 - srcIdx

	tp := TimelinePlan{TargetDuration: durations[srcIdx]}
	tp.Inputs[srcIdx] = InputTimeline{TrimTo: tp.TargetDuration}

	other := durations[otherIdx]
	switch {
	case other >= tp.TargetDuration:
		tp.Inputs[otherIdx] = InputTimeline{TrimTo: tp.TargetDuration}
	case loopEnabled:
		// Looped and cut exactly at the target; the final repetition may be
		// truncated mid-loop.
		tp.Inputs[otherIdx] = InputTimeline{Loop: true, TrimTo: tp.TargetDuration}
	default:
		tp.Inputs[otherIdx] = InputTimeline{TrimTo: other}
		tp.Shortened = true
	}

	return tp, nil
}
