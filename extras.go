package sdf

// lineExtra holds per-line coefficients precomputed once per generate
// call: the direction vector and the inverse squared length, both of
// which the distance solver needs on every pixel it evaluates against
// this line.
type lineExtra struct {
	A           Vec2
	InvLengthSq float32
}

// curveExtra holds the quadratic Bézier expressed in monomial form,
// B(t) = A*t^2 + B*t + C, plus the cutoff at which the
// interval-narrowing solver stops subdividing: the reciprocal of the
// control polygon's length, |P1P2| + |P2P3|.
type curveExtra struct {
	A, B, C           Vec2
	MaxHalfSubLineLen float32
}

// segmentExtra is the per-segment auxiliary data for whichever geometry
// the segment holds.
type segmentExtra struct {
	IsCurve bool
	Line    lineExtra
	Curve   curveExtra
}

func calcLineExtra(l Line) lineExtra {
	return lineExtra{
		A:           l.P2.Sub(l.P1),
		InvLengthSq: 1 / l.P1.DistanceSquared(l.P2),
	}
}

func calcCurveExtra(c Curve) curveExtra {
	return curveExtra{
		A:                 c.P1.Sub(c.P2.Mul(2)).Add(c.P3),
		B:                 c.P2.Sub(c.P1).Mul(2),
		C:                 c.P1,
		MaxHalfSubLineLen: 1 / (c.P1.Distance(c.P2) + c.P2.Distance(c.P3)),
	}
}

func calcSegmentExtra(seg Segment) segmentExtra {
	if seg.IsCurve {
		return segmentExtra{IsCurve: true, Curve: calcCurveExtra(seg.Curve)}
	}
	return segmentExtra{Line: calcLineExtra(seg.Line)}
}

// evaluateBezier evaluates B(t) = A*t^2 + B*t + C for a scalar t.
func evaluateBezier(ext curveExtra, t float32) Vec2 {
	return Vec2{
		X: ext.A.X*t*t + ext.B.X*t + ext.C.X,
		Y: ext.A.Y*t*t + ext.B.Y*t + ext.C.Y,
	}
}
