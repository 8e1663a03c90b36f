package sdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRows(n, maxIntercepts int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{
			distances:  make([]float32, 1),
			intercepts: make([]float32, maxIntercepts),
		}
	}
	return rows
}

func TestUpdateLineIntercepts_SkipsHorizontal(t *testing.T) {
	l := Line{P1: V(0, 5), P2: V(10, 5)}
	rows := newTestRows(10, 4)
	updateLineIntercepts(l, rows, ispan1{Min: 0, Max: 9})

	for i, r := range rows {
		assert.Equal(t, 0, r.interceptLen, "row %d should have no intercepts for a horizontal line", i)
	}
}

func TestUpdateLineIntercepts_DiagonalCrossesEachRowOnce(t *testing.T) {
	l := Line{P1: V(0, 0), P2: V(10, 10)}
	rows := newTestRows(10, 4)
	updateLineIntercepts(l, rows, ispan1{Min: 0, Max: 9})

	for i, r := range rows {
		assert.Equal(t, 1, r.interceptLen, "row %d", i)
		want := float32(i) + 0.5
		assert.InDelta(t, want, r.intercepts[0], 1e-3)
	}
}

func TestUpdateLineIntercepts_ExcludesEndpoints(t *testing.T) {
	// A line whose endpoint sits exactly on a scanline must not report
	// that scanline as an intercept.
	l := Line{P1: V(3, 2.5), P2: V(3, 10)}
	rows := newTestRows(12, 4)
	updateLineIntercepts(l, rows, ispan1{Min: 0, Max: 11})

	assert.Equal(t, 0, rows[2].interceptLen, "scanline through the endpoint must not count")
}

func TestUpdatePointIntercepts_OppositeSidesCross(t *testing.T) {
	// Two lines sharing a vertex exactly at y=5.5, approaching from
	// below and leaving above: a genuine crossing.
	seg1 := NewLineSegment(V(0, 0), V(5, 5.5))
	seg2 := NewLineSegment(V(5, 5.5), V(10, 10))
	rows := newTestRows(12, 4)

	updatePointIntercepts(seg1, seg2, rows, 12)

	assert.Equal(t, 1, rows[5].interceptLen)
}

func TestUpdatePointIntercepts_SameSideDoesNotCross(t *testing.T) {
	// A vertex that is a local min/max on the contour: both neighbors
	// are on the same side of the scanline, so the contour only
	// touches it, and it must not count as a crossing.
	seg1 := NewLineSegment(V(0, 0), V(5, 5.5))
	seg2 := NewLineSegment(V(5, 5.5), V(10, 0))
	rows := newTestRows(12, 4)

	updatePointIntercepts(seg1, seg2, rows, 12)

	assert.Equal(t, 0, rows[5].interceptLen)
}

func TestUpdateContourPointIntercepts_WrapsAround(t *testing.T) {
	// A diamond with its rightmost vertex exactly on a scanline; the
	// wraparound pair (last segment -> first segment) must be checked
	// just like every other adjacent pair.
	top := V(5, 0)
	right := V(10, 5.5)
	bottom := V(5, 11)
	left := V(0, 5.5)
	// The last segment ends at right and the first starts there, so
	// right is only visited through the wraparound pair.
	c := Contour{Segments: []Segment{
		NewLineSegment(right, bottom),
		NewLineSegment(bottom, left),
		NewLineSegment(left, top),
		NewLineSegment(top, right),
	}}
	rows := newTestRows(12, 4)

	updateContourPointIntercepts(c, rows, 12)

	// Neither right nor left is a local extremum in y: each has one
	// neighbor below y=5.5 and one above, so each is a genuine crossing,
	// and missing the wraparound pair would leave only one intercept.
	assert.Equal(t, 2, rows[5].interceptLen)
}
