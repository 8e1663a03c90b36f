package sdf

// span1 is a closed interval [Min, Max] of float32.
type span1 struct {
	Min, Max float32
}

func (s span1) clamp(lo, hi float32) span1 {
	return span1{Min: clampf(s.Min, lo, hi), Max: clampf(s.Max, lo, hi)}
}

// span2 is an axis-aligned bounding box with float32 corners.
type span2 struct {
	Min, Max Vec2
}

// expand returns the span grown by d on every side.
func (s span2) expand(d float32) span2 {
	return span2{
		Min: Vec2{X: s.Min.X - d, Y: s.Min.Y - d},
		Max: Vec2{X: s.Max.X + d, Y: s.Max.Y + d},
	}
}

func (s span2) contains(p Vec2) bool {
	return p.X >= s.Min.X && p.X <= s.Max.X && p.Y >= s.Min.Y && p.Y <= s.Max.Y
}

// ispan1 is a closed interval [Min, Max] of int, used for pixel-row
// ranges.
type ispan1 struct {
	Min, Max int
}

func (s ispan1) clampify(lo, hi int) ispan1 {
	if s.Min < lo {
		s.Min = lo
	}
	if s.Max > hi {
		s.Max = hi
	}
	return s
}

// lineSpan returns the tight bounding box of a line.
func lineSpan(l Line) span2 {
	return span2{Min: l.P1.Min(l.P2), Max: l.P1.Max(l.P2)}
}

// curveSpan returns the tight bounding box of a quadratic Bézier curve,
// accounting for the curve's single extremum when its control point
// falls outside the box formed by its endpoints.
func curveSpan(c Curve, ext curveExtra) span2 {
	s := span2{Min: c.P1.Min(c.P3), Max: c.P1.Max(c.P3)}
	if s.contains(c.P2) {
		return s
	}

	extremeT := Vec2{
		X: clampf(ext.B.X/(-2*ext.A.X), 0, 1),
		Y: clampf(ext.B.Y/(-2*ext.A.Y), 0, 1),
	}
	extremeP := Vec2{
		X: ext.A.X*extremeT.X*extremeT.X + ext.B.X*extremeT.X + ext.C.X,
		Y: ext.A.Y*extremeT.Y*extremeT.Y + ext.B.Y*extremeT.Y + ext.C.Y,
	}
	s.Min = s.Min.Min(extremeP)
	s.Max = s.Max.Max(extremeP)
	return s
}

// segmentSpan returns the tight bounding box of a segment.
func segmentSpan(seg Segment, ext segmentExtra) span2 {
	if seg.IsCurve {
		return curveSpan(seg.Curve, ext.Curve)
	}
	return lineSpan(seg.Line)
}
