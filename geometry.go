package sdf

// maxCoordinate bounds every valid vertex coordinate. Anything beyond
// this is treated as invalid input rather than risking overflow deep in
// the distance solver.
const maxCoordinate = 1.0e9

func pointValid(p Vec2) bool {
	return absf(p.X) <= maxCoordinate && absf(p.Y) <= maxCoordinate
}

// Line is a straight segment from P1 to P2.
type Line struct {
	P1, P2 Vec2
}

// Valid reports whether the line has two distinct, finite-magnitude
// endpoints.
func (l Line) Valid() bool {
	return pointValid(l.P1) && pointValid(l.P2) && l.P1 != l.P2
}

// Curve is a quadratic Bézier segment with control points P1 (start),
// P2 (control), P3 (end).
type Curve struct {
	P1, P2, P3 Vec2
}

// Valid reports whether the curve has three distinct, finite-magnitude
// control points.
func (c Curve) Valid() bool {
	return pointValid(c.P1) && pointValid(c.P2) && pointValid(c.P3) &&
		c.P1 != c.P2 && c.P2 != c.P3 && c.P3 != c.P1
}

// Segment is either a Line or a Curve. IsCurve selects which field is
// meaningful; the other is unused.
type Segment struct {
	IsCurve bool
	Line    Line
	Curve   Curve
}

// NewLineSegment builds a line segment from two endpoints.
func NewLineSegment(p1, p2 Vec2) Segment {
	return Segment{Line: Line{P1: p1, P2: p2}}
}

// NewCurveSegment builds a quadratic Bézier segment.
func NewCurveSegment(p1, p2, p3 Vec2) Segment {
	return Segment{IsCurve: true, Curve: Curve{P1: p1, P2: p2, P3: p3}}
}

// Valid reports whether the segment's underlying geometry is valid.
func (s Segment) Valid() bool {
	if s.IsCurve {
		return s.Curve.Valid()
	}
	return s.Line.Valid()
}

// start returns the segment's first point.
func (s Segment) start() Vec2 {
	if s.IsCurve {
		return s.Curve.P1
	}
	return s.Line.P1
}

// end returns the segment's last point.
func (s Segment) end() Vec2 {
	if s.IsCurve {
		return s.Curve.P3
	}
	return s.Line.P2
}

// Contour is a closed loop of connected segments: each segment's end
// point must equal the next segment's start point, wrapping around from
// the last segment back to the first.
type Contour struct {
	Segments []Segment
}

// Valid reports whether the contour has at least two segments, all of
// which are individually valid and connect end-to-start around the loop.
func (c Contour) Valid() bool {
	if len(c.Segments) < 2 {
		return false
	}
	for _, seg := range c.Segments {
		if !seg.Valid() {
			return false
		}
	}
	for i := 1; i < len(c.Segments); i++ {
		if c.Segments[i-1].end() != c.Segments[i].start() {
			return false
		}
	}
	return c.Segments[len(c.Segments)-1].end() == c.Segments[0].start()
}

// CullDegenerates removes zero-length lines, drops curves whose start
// equals their end, and demotes curves whose three control points are
// exactly collinear (including a control point that coincides with an
// endpoint) into plain lines from start to end. It mutates the
// contour's Segments slice in place.
func (c *Contour) CullDegenerates() {
	out := c.Segments[:0]
	for _, seg := range c.Segments {
		if seg.IsCurve {
			if seg.Curve.P1 == seg.Curve.P3 {
				continue
			}
			if seg.Curve.P1.Sub(seg.Curve.P2).Cross(seg.Curve.P3.Sub(seg.Curve.P2)) == 0 {
				seg = NewLineSegment(seg.Curve.P1, seg.Curve.P3)
			}
			out = append(out, seg)
			continue
		}
		if seg.Line.P1 == seg.Line.P2 {
			continue
		}
		out = append(out, seg)
	}
	c.Segments = out
}

// Transform scales then translates every point in the contour, in place.
func (c *Contour) Transform(scale, translate Vec2) {
	for i := range c.Segments {
		seg := &c.Segments[i]
		if seg.IsCurve {
			seg.Curve.P1 = seg.Curve.P1.MulVec(scale).Add(translate)
			seg.Curve.P2 = seg.Curve.P2.MulVec(scale).Add(translate)
			seg.Curve.P3 = seg.Curve.P3.MulVec(scale).Add(translate)
		} else {
			seg.Line.P1 = seg.Line.P1.MulVec(scale).Add(translate)
			seg.Line.P2 = seg.Line.P2.MulVec(scale).Add(translate)
		}
	}
}

// Outline is the full shape to rasterize: one or more closed contours
// (Valid rejects an outline with none).
// Contours may be wound in either direction and may nest; parity
// determines inside/outside, not winding direction.
type Outline struct {
	Contours []Contour
}

// CullDegenerates removes degenerate segments from every contour and
// drops any contour left with no segments.
func (o *Outline) CullDegenerates() {
	out := o.Contours[:0]
	for i := range o.Contours {
		o.Contours[i].CullDegenerates()
		if len(o.Contours[i].Segments) > 0 {
			out = append(out, o.Contours[i])
		}
	}
	o.Contours = out
}

// Transform scales then translates every contour in the outline.
func (o *Outline) Transform(scale, translate Vec2) {
	for i := range o.Contours {
		o.Contours[i].Transform(scale, translate)
	}
}

// Valid reports whether the outline has at least one contour and every
// contour is individually valid.
func (o Outline) Valid() bool {
	if len(o.Contours) == 0 {
		return false
	}
	for _, c := range o.Contours {
		if !c.Valid() {
			return false
		}
	}
	return true
}

// segmentCount returns the total number of segments across all contours.
func (o Outline) segmentCount() int {
	n := 0
	for _, c := range o.Contours {
		n += len(c.Segments)
	}
	return n
}
