// Package probe provides ffprobe-based media inspection. A single JSON call
// per input file yields the VideoMeta the planner consumes: dimensions,
// duration, frame rate, and audio presence.
//
// The planner treats probe as a black box; ParseJSON is exported so planning
// inputs can be constructed in tests without a real ffprobe binary.
package probe
