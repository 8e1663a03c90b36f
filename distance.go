package sdf

// distanceSqTo returns the squared distance from p to the nearest point
// on seg.
func distanceSqTo(seg Segment, ext segmentExtra, p Vec2) float32 {
	if seg.IsCurve {
		return curveDistanceSq(ext.Curve, p)
	}
	return lineDistanceSq(seg.Line, ext.Line, p)
}

// lineDistanceSq returns the squared distance from p to the segment
// l.P1-l.P2, by projecting p onto the line and clamping the projection
// parameter to [0,1] so the result stays on the segment rather than its
// infinite extension.
func lineDistanceSq(l Line, ext lineExtra, p Vec2) float32 {
	b := p.Sub(l.P1)
	t := clampf(ext.A.Dot(b)*ext.InvLengthSq, 0, 1)
	c := ext.A.Mul(t)
	return b.DistanceSquared(c)
}

// curveDistanceSq returns the squared distance from p to the quadratic
// Bézier curve described by ext.
//
// The curve is split at its point of maximum curvature (the t where the
// tangent direction changes fastest) into up to two monotonic-curvature
// sub-ranges, and each is handed to findClosestPointOnCurve
// independently. Splitting there keeps the interval-narrowing search
// well-behaved: a curve with an inflection-like bend in the middle can
// otherwise fool the bracket toward the wrong side.
func curveDistanceSq(ext curveExtra, p Vec2) float32 {
	d := -2 * ext.A.LengthSquared()
	var u float32
	if d != 0 {
		u = clampf(ext.A.Dot(ext.B)/d, 0, 1)
	}

	dist2 := inf32

	if u > 0 {
		dist2 = minf(dist2, findClosestPointOnCurve(ext, p, 0, u))
	}
	if u < 1 {
		dist2 = minf(dist2, findClosestPointOnCurve(ext, p, u, 1))
	}

	return dist2
}

// findClosestPointOnCurve narrows [lowT, highT] toward the sub-interval
// of the curve nearest p, halving the bracket each iteration and always
// keeping whichever half could still contain a point closer than the
// best one found so far. Once the bracket shrinks below the curve's
// MaxHalfSubLineLen cutoff, the remaining chord is short enough that
// treating it as a straight line introduces negligible error, and the
// squared distance to that chord is returned.
//
// The three-way choice on each iteration — shrink toward low, shrink
// toward high, or split down the middle — must check the low side
// first, then the high side, and only fall through to the split when
// neither side alone can be ruled out; reordering those checks changes
// which of several equally-close points gets selected on symmetric
// curves and breaks determinism against the reference bracket-narrowing
// behavior this solver is ported from.
func findClosestPointOnCurve(ext curveExtra, p Vec2, lowT, highT float32) float32 {
	midT := (lowT + highT) * 0.5
	lowB := evaluateBezier(ext, lowT)
	midB := evaluateBezier(ext, midT)
	highB := evaluateBezier(ext, highT)
	lowDist2 := p.DistanceSquared(lowB)
	midDist2 := p.DistanceSquared(midB)
	highDist2 := p.DistanceSquared(highB)
	minDist2 := min3f(lowDist2, midDist2, highDist2)
	halfLength := (highT - lowT) * 0.5

	for halfLength > ext.MaxHalfSubLineLen {
		halfLength *= 0.5

		t1 := midT - halfLength
		t2 := midT + halfLength
		b1 := evaluateBezier(ext, t1)
		b2 := evaluateBezier(ext, t2)
		d1 := p.DistanceSquared(b1)
		d2 := p.DistanceSquared(b2)

		minDist2 = min3f(minDist2, d1, d2)

		switch {
		case minf(lowDist2, d1) <= minDist2:
			highT, highB, highDist2 = midT, midB, midDist2
			midT, midB, midDist2 = t1, b1, d1
		case minf(highDist2, d2) <= minDist2:
			lowT, lowB, lowDist2 = midT, midB, midDist2
			midT, midB, midDist2 = t2, b2, d2
		default:
			lowT, lowB, lowDist2 = t1, b1, d1
			highT, highB, highDist2 = t2, b2, d2
		}
	}

	return distanceSqToChord(lowB, highB, p)
}

// distanceSqToChord returns the squared distance from p to the line
// segment a-b, clamping the projection to the segment.
func distanceSqToChord(a, b Vec2, p Vec2) float32 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.DistanceSquared(a)
	}
	t := clampf(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return p.DistanceSquared(a.Add(ab.Mul(t)))
}
