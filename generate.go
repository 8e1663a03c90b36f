package sdf

import (
	"image"
	"sort"
)

// sortFloat32s sorts xs in place. There is no sort.Float32s in the
// standard library (only sort.Float64s), so this wraps sort.Slice.
func sortFloat32s(xs []float32) {
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
}

// Generate rasterizes outline into a size x size grayscale signed
// distance field. rng is the total outline-space width of the 0-to-1
// intensity gradient straddling the contour.
//
// size == 0 returns an empty, zero-dimension image rather than an
// error; size < 0 returns a *ScratchError. A zero or negative rng
// makes every pixel saturate, which is allowed but almost certainly
// not what the caller wants.
//
// Generate allocates its own scratch buffers; callers generating many
// fields back to back should use GenerateInto with a reused *Scratch
// instead.
func Generate(outline Outline, size int, rng float32) (*image.Gray, error) {
	var s Scratch
	return GenerateInto(&s, outline, size, rng)
}

// GenerateInto is Generate, but reuses the buffers in s instead of
// allocating new ones. s may be reused across any number of calls,
// including with different outlines and sizes; its buffers grow as
// needed and are never shrunk.
func GenerateInto(s *Scratch, outline Outline, size int, rng float32) (*image.Gray, error) {
	if !outline.Valid() {
		return nil, ErrInvalidOutline
	}

	if size < 0 {
		return nil, &ScratchError{Field: "size", Reason: "must be non-negative"}
	}

	if size == 0 {
		return image.NewGray(image.Rect(0, 0, 0, 0)), nil
	}

	s.reset(size, outline.segmentCount())

	for _, contour := range outline.Contours {
		for _, seg := range contour.Segments {
			processSegment(seg, size, rng, s.rows)
		}
		updateContourPointIntercepts(contour, s.rows, size)
	}

	for i := range s.distances {
		s.distances[i] = sqrtf(s.distances[i])
	}

	fSize := float32(size)
	for i := range s.rows {
		r := &s.rows[i]
		intercepts := r.usedIntercepts()
		sortFloat32s(intercepts)

		if len(intercepts)%2 != 0 {
			handleOddIntercepts(s, i)
			intercepts = r.usedIntercepts()
		}

		for j := 1; j < len(intercepts); j += 2 {
			xSpan := span1{Min: intercepts[j-1], Max: intercepts[j]}.clamp(0, fSize)
			lo := ceilToInt(xSpan.Min - 0.5)
			hi := floorToInt(xSpan.Max - 0.5)
			for x := lo; x <= hi; x++ {
				r.distances[x] = -r.distances[x]
			}
		}
	}

	// s.distances is already wired by reset so that linear buffer order
	// is top-down image order (row 0 of the image is the last row rows[]
	// wrote, i.e. the largest outline y) — copy it straight across
	// rather than re-indexing by row, which would flip it back.
	img := image.NewGray(image.Rect(0, 0, size, size))
	invRange := 1 / rng
	for i, d := range s.distances {
		img.Pix[i] = quantize(0.5 - d*invRange)
	}

	return img, nil
}

// handleOddIntercepts resolves a row whose sorted intercept count came
// out odd, which should never happen for a valid, non-self-intersecting
// outline. The release behavior is to warn and drop the last
// intercept, restoring even parity at the cost of a possibly
// slightly-wrong boundary on that one row; with s.PanicOnParity set it
// panics instead so the bad outline surfaces immediately.
func handleOddIntercepts(s *Scratch, rowIdx int) {
	r := &s.rows[rowIdx]
	if s.PanicOnParity {
		panic("sdf: row has an odd intercept count; outline is self-intersecting or malformed")
	}
	Logger().Warn("sdf: dropping trailing intercept on row with odd count",
		"row", rowIdx, "count", r.interceptLen)
	r.interceptLen--
}

// quantize maps a 0-to-1 intensity (with out-of-range values meaning
// saturated) to a uint8 pixel value, clamping rather than wrapping.
func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// processSegment computes the segment's bounding span, widens it by
// rng on each side to decide which pixels need their distance updated,
// and separately narrows it to the exact set of scanline rows the
// segment can contribute an intercept to.
func processSegment(seg Segment, size int, rng float32, rows []row) {
	ext := calcSegmentExtra(seg)
	bounds := segmentSpan(seg, ext)

	updateDistances(seg, ext, size, rng, rows, bounds)

	interceptRows := ispan1{
		Min: ceilToInt(bounds.Min.Y - 0.5),
		Max: floorToInt(bounds.Max.Y - 0.5),
	}
	if float32(interceptRows.Min)+0.5 == bounds.Min.Y {
		interceptRows.Min++
	}
	if float32(interceptRows.Max)+0.5 == bounds.Max.Y {
		interceptRows.Max--
	}
	interceptRows = interceptRows.clampify(0, size-1)

	if interceptRows.Max >= interceptRows.Min {
		updateIntercepts(seg, ext, rows, interceptRows)
	}
}

// updateDistances folds the squared distance from every pixel center in
// bounds (widened by rng and clipped to the image) into that pixel's
// running minimum.
func updateDistances(seg Segment, ext segmentExtra, size int, rng float32, rows []row, bounds span2) {
	widened := bounds.expand(rng)

	minX := maxInt(floorToInt(widened.Min.X), 0)
	minY := maxInt(floorToInt(widened.Min.Y), 0)
	maxX := minInt(ceilToInt(widened.Max.X), size)
	maxY := minInt(ceilToInt(widened.Max.Y), size)

	for y := minY; y < maxY; y++ {
		r := &rows[y]
		py := float32(y) + 0.5
		for x := minX; x < maxX; x++ {
			p := Vec2{X: float32(x) + 0.5, Y: py}
			d2 := distanceSqTo(seg, ext, p)
			if d2 < r.distances[x] {
				r.distances[x] = d2
			}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
