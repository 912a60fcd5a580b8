// Package pipeline orchestrates one combine run: input validation, parallel
// probing, plan construction, ffmpeg execution with hardware fallback, and
// result reporting.
package pipeline
