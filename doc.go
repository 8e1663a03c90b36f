// Package sdf generates signed distance fields from 2D vector outlines.
//
// # Overview
//
// sdf rasterizes a closed outline made of straight lines and quadratic
// Bézier curves into a square, single-channel image. Each pixel holds the
// signed Euclidean distance from its center to the nearest point on the
// outline, normalized against a caller-chosen range and biased so the
// outline itself sits at mid-gray (128): brighter pixels are inside,
// darker pixels are outside.
//
// The kernel is deliberately narrow. It does not anti-alias the outline
// edge, does not produce multi-channel (MSDF) output, does not support
// cubic Bézier segments, and does not parallelize across rows — callers
// needing any of that should post-process the result or reach for a
// different tool. It is single-threaded and deterministic: the same
// outline, size, and range always produce bit-identical output.
//
// # Usage
//
//	outline := sdf.Outline{Contours: []sdf.Contour{
//		{Segments: []sdf.Segment{
//			sdf.NewLineSegment(sdf.Vec2{X: 0, Y: 0}, sdf.Vec2{X: 64, Y: 0}),
//			sdf.NewLineSegment(sdf.Vec2{X: 64, Y: 0}, sdf.Vec2{X: 64, Y: 64}),
//			sdf.NewLineSegment(sdf.Vec2{X: 64, Y: 64}, sdf.Vec2{X: 0, Y: 64}),
//			sdf.NewLineSegment(sdf.Vec2{X: 0, Y: 64}, sdf.Vec2{X: 0, Y: 0}),
//		}},
//	}}
//
//	img, err := sdf.Generate(outline, 64, 8)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Callers generating many fields back to back (a glyph atlas builder, for
// example) should reuse a single [Scratch] across calls via
// [GenerateInto] to avoid repeated allocation.
//
// # Precision
//
// All geometry and intermediate math use float32, matching the kernel's
// origin as a port of a float32-throughout implementation: mixing in
// float64 anywhere in the distance solver would change rounding behavior
// and break determinism across architectures.
package sdf
