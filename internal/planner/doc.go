// Package planner contains the decision logic of the combiner: given two
// probed inputs and the run options it computes the canvas geometry, the
// per-input scale/pad transforms, the duration-matching plan, and assembles
// everything into a ProcessingPlan that the ffmpeg package translates
// mechanically into a command line.
//
// The package is pure: no I/O, no hidden state. Environmental inputs (core
// count) are injected through Options so plans are reproducible in tests.
//
//   - geometry.go — half-box fitting, no-upscale clamp, even-dimension
//     forcing, symmetric letterboxing (PlanGeometry)
//   - timeline.go — target duration and per-input loop/trim (PlanTimeline)
//   - assemble.go — stage lists, composition, audio selection, encode
//     parameters (Assemble, BuildPlan)
//   - quality.go — preset/accel → encoder argument lookup tables
package planner
