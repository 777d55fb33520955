// Package pipeline runs the spectral response processing end to end:
// load the reference and multi-channel CSV directories, extract the five
// curves, resample each onto a uniform grid, build the chart and export it.
//
// Stages run strictly in sequence on the calling goroutine. Each stage is
// traced as its own span and timed in the spectral_stage_duration_seconds histogram.
package pipeline
