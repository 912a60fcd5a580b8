// Package ffmpeg translates a planner.ProcessingPlan into an ffmpeg command
// line and executes it. The translation is mechanical: every decision
// (geometry, timeline, audio, encoder knobs) is already fixed in the plan.
//
//   - builder.go — Build: plan → argv, including filter_complex rendering
//   - executor.go — Execute: run ffmpeg with stderr capture and timeout
//   - detect.go — DetectAccel: hardware encoder probing by test encode
package ffmpeg
