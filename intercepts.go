package sdf

// updateLineIntercepts records, for each pixel row in interceptRows, the
// x coordinate where the line crosses that row's scanline (y = row+0.5),
// unless the crossing lands exactly on one of the line's own endpoints —
// endpoint crossings are handled separately by updatePointIntercepts,
// which knows how to tell whether the contour actually crosses the
// scanline there or merely touches it.
//
// A perfectly horizontal line never crosses a scanline at a single x, so
// it contributes no intercepts at all.
func updateLineIntercepts(l Line, rows []row, interceptRows ispan1) {
	if l.P1.Y == l.P2.Y {
		return
	}

	delta := l.P2.Sub(l.P1)
	slope := delta.X / delta.Y
	offset := l.P1.X - slope*l.P1.Y

	for yPx := interceptRows.Min; yPx <= interceptRows.Max; yPx++ {
		y := float32(yPx) + 0.5
		x := slope*y + offset
		intercept := Vec2{X: x, Y: y}

		if intercept != l.P1 && intercept != l.P2 {
			rows[yPx].addIntercept(x)
		}
	}
}

// updateCurveIntercepts records the x coordinates where the curve
// crosses each scanline in interceptRows, solving the quadratic
// B(t).y = y for t and keeping roots that fall strictly inside (0,1) —
// endpoint roots are, again, left to updatePointIntercepts.
func updateCurveIntercepts(c Curve, ext curveExtra, rows []row, interceptRows ispan1) {
	for yPx := interceptRows.Min; yPx <= interceptRows.Max; yPx++ {
		y := float32(yPx) + 0.5

		t0, t1, n := solveQuadratic(ext.A.Y, ext.B.Y, ext.C.Y-y)
		for i := 0; i < n; i++ {
			t := t0
			if i == 1 {
				t = t1
			}
			if t <= 0 || t >= 1 {
				continue
			}
			intercept := evaluateBezier(ext, t)
			if intercept != c.P1 && intercept != c.P2 {
				rows[yPx].addIntercept(intercept.X)
			}
		}
	}
}

// solveQuadratic solves a*t^2 + b*t + c = 0, returning however many real
// roots exist (0, 1, or 2) via the first n return values.
func solveQuadratic(a, b, c float32) (t0, t1 float32, n int) {
	if a == 0 {
		if b == 0 {
			return 0, 0, 0
		}
		return -c / b, 0, 1
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, 0
	}
	if disc == 0 {
		return -b / (2 * a), 0, 1
	}

	sq := sqrtf(disc)
	return (-b - sq) / (2 * a), (-b + sq) / (2 * a), 2
}

// updateIntercepts dispatches to the line or curve intercept collector.
func updateIntercepts(seg Segment, ext segmentExtra, rows []row, interceptRows ispan1) {
	if seg.IsCurve {
		updateCurveIntercepts(seg.Curve, ext.Curve, rows, interceptRows)
		return
	}
	updateLineIntercepts(seg.Line, rows, interceptRows)
}

// updatePointIntercepts handles the case a plain edge-crossing scan
// misses entirely: a shared vertex between two segments that happens to
// sit exactly on a scanline (its y is an exact half-integer). Whether
// that counts as a crossing depends on which side of the scanline the
// contour approaches from and leaves to — if both neighboring points lie
// on the same side, the contour only touches the scanline at a vertex
// and doesn't actually cross it there.
func updatePointIntercepts(seg1, seg2 Segment, rows []row, size int) {
	p := seg1.end()
	if p.Y <= 0 {
		return
	}

	i := floorToInt(p.Y)
	f := p.Y - float32(i)
	if f != 0.5 || i >= size {
		return
	}

	p1 := controlPointBefore(seg1)
	p2 := controlPointAfter(seg2)

	if absf(signf(p1.Y-p.Y)-signf(p2.Y-p.Y)) == 2 {
		rows[i].addIntercept(p.X)
	}
}

// controlPointBefore returns the point adjacent to a segment's end
// point along the segment itself: its other endpoint for a line, or its
// control point for a curve — unless that control point shares the end
// point's y, in which case the curve's start point is used instead.
func controlPointBefore(seg Segment) Vec2 {
	if seg.IsCurve {
		if seg.Curve.P2.Y == seg.Curve.P3.Y {
			return seg.Curve.P1
		}
		return seg.Curve.P2
	}
	return seg.Line.P1
}

// controlPointAfter returns the point adjacent to a segment's start
// point along the segment itself: its other endpoint for a line, or its
// control point for a curve — unless that control point shares the
// start point's y, in which case the curve's end point is used instead.
func controlPointAfter(seg Segment) Vec2 {
	if seg.IsCurve {
		if seg.Curve.P2.Y == seg.Curve.P1.Y {
			return seg.Curve.P3
		}
		return seg.Curve.P2
	}
	return seg.Line.P2
}

// updateContourPointIntercepts walks every adjacent pair of segments in
// the contour, including the wraparound pair from the last segment back
// to the first, looking for shared vertices that land exactly on a
// scanline.
func updateContourPointIntercepts(c Contour, rows []row, size int) {
	n := len(c.Segments)
	for i := 0; i < n-1; i++ {
		updatePointIntercepts(c.Segments[i], c.Segments[i+1], rows, size)
	}
	updatePointIntercepts(c.Segments[n-1], c.Segments[0], rows, size)
}
