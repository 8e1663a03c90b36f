package sdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineDistanceSq(t *testing.T) {
	l := Line{P1: V(0, 0), P2: V(10, 0)}
	ext := calcLineExtra(l)

	tests := []struct {
		name string
		p    Vec2
		want float32
	}{
		{"on the segment", V(5, 0), 0},
		{"directly above midpoint", V(5, 3), 9},
		{"beyond p2, clamped", V(15, 0), 25},
		{"beyond p1, clamped", V(-4, 0), 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineDistanceSq(l, ext, tt.p)
			assert.InDelta(t, tt.want, got, 1e-3)
		})
	}
}

func TestCurveDistanceSq_DegeneratesToLine(t *testing.T) {
	// A curve whose control point sits on the chord midpoint is exactly
	// a straight line, so its distance field should match a Line's.
	c := Curve{P1: V(0, 0), P2: V(5, 0), P3: V(10, 0)}
	ext := calcCurveExtra(c)

	l := Line{P1: V(0, 0), P2: V(10, 0)}
	lExt := calcLineExtra(l)

	p := V(5, 3)
	gotCurve := curveDistanceSq(ext, p)
	gotLine := lineDistanceSq(l, lExt, p)

	assert.InDelta(t, gotLine, gotCurve, 1e-2)
}

func TestCurveDistanceSq_Symmetric(t *testing.T) {
	// A curve symmetric about x=5 should report the same distance for
	// points mirrored across that axis.
	c := Curve{P1: V(0, 0), P2: V(5, 10), P3: V(10, 0)}
	ext := calcCurveExtra(c)

	d1 := curveDistanceSq(ext, V(2, -5))
	d2 := curveDistanceSq(ext, V(8, -5))

	assert.InDelta(t, d1, d2, 1e-1)
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float32
		wantN   int
	}{
		{"two roots", 1, -3, 2, 2},    // (t-1)(t-2)
		{"one root (linear)", 0, 2, -4, 1},
		{"no real roots", 1, 0, 1, 0},
		{"double root", 1, -2, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, n := solveQuadratic(tt.a, tt.b, tt.c)
			assert.Equal(t, tt.wantN, n)
		})
	}
}
