// Command sdfdemo rasterizes a small built-in outline and writes the
// resulting signed distance field to a PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/sdf"
)

func main() {
	var (
		size   = flag.Int("size", 128, "output image width and height")
		rng    = flag.Float64("range", 16, "distance range, in outline units, mapped to the full intensity gradient")
		output = flag.String("output", "sdf.png", "output PNG path")
		shape  = flag.String("shape", "blob", "shape to rasterize: square, blob")
	)
	flag.Parse()

	outline := buildOutline(*shape, float32(*size))

	img, err := sdf.Generate(outline, *size, float32(*rng))
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode: %v", err)
	}

	log.Printf("wrote %s (%dx%d)\n", *output, *size, *size)
}

// buildOutline returns a small demonstration outline scaled to fill
// most of a size x size canvas.
func buildOutline(shape string, size float32) sdf.Outline {
	switch shape {
	case "blob":
		return blobOutline(size)
	default:
		return squareOutline(size)
	}
}

func squareOutline(size float32) sdf.Outline {
	m := size * 0.2
	a := sdf.V(m, m)
	b := sdf.V(size-m, m)
	c := sdf.V(size-m, size-m)
	d := sdf.V(m, size-m)
	return sdf.Outline{Contours: []sdf.Contour{{Segments: []sdf.Segment{
		sdf.NewLineSegment(a, b),
		sdf.NewLineSegment(b, c),
		sdf.NewLineSegment(c, d),
		sdf.NewLineSegment(d, a),
	}}}}
}

// blobOutline builds a four-petal rounded shape out of quadratic
// Bézier segments, centered on the canvas.
func blobOutline(size float32) sdf.Outline {
	cx, cy := size*0.5, size*0.5
	r := size * 0.35

	pts := [4]sdf.Vec2{
		sdf.V(cx+r, cy),
		sdf.V(cx, cy+r),
		sdf.V(cx-r, cy),
		sdf.V(cx, cy-r),
	}
	ctrl := size * 0.15

	segs := make([]sdf.Segment, 0, 4)
	for i := 0; i < 4; i++ {
		p1 := pts[i]
		p3 := pts[(i+1)%4]
		mid := p1.Add(p3).Mul(0.5)
		away := mid.Sub(sdf.V(cx, cy)).Mul(2)
		control := mid.Add(away).Add(sdf.V(ctrl, ctrl))
		segs = append(segs, sdf.NewCurveSegment(p1, control, p3))
	}

	return sdf.Outline{Contours: []sdf.Contour{{Segments: segs}}}
}
