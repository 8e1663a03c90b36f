package sdf

// row is a view into Scratch's shared backing arrays for one pixel row:
// its slice of per-pixel squared (later, plain) distances, and the
// prefix of its intercepts slice currently in use.
type row struct {
	distances    []float32
	intercepts   []float32
	interceptLen int
}

func (r *row) addIntercept(x float32) {
	r.intercepts[r.interceptLen] = x
	r.interceptLen++
}

func (r *row) usedIntercepts() []float32 {
	return r.intercepts[:r.interceptLen]
}

// Scratch holds the reusable buffers a single Generate/GenerateInto call
// needs: the per-pixel distance grid, the per-row intercept lists, and
// the row descriptors that alias into both. Reusing a Scratch across
// many calls (for example, when rasterizing every glyph of a font into
// an atlas) avoids reallocating these buffers on every call; a oneshot
// caller can just call Generate and let it manage its own.
//
// A Scratch is not safe for concurrent use: generation is single
// threaded by design, and a Scratch carries that same constraint — use
// one Scratch per goroutine if rasterizing concurrently.
type Scratch struct {
	distances     []float32
	rowIntercepts []float32
	rows          []row

	// PanicOnParity makes GenerateInto panic, instead of logging a
	// warning and dropping the last intercept, when a row accumulates
	// an odd number of intercepts. An odd count always indicates an
	// invalid or self-intersecting outline that Outline.Valid did not
	// catch; enabling this during testing surfaces that immediately
	// instead of silently producing a slightly wrong image.
	PanicOnParity bool
}

// reset grows the scratch's buffers to fit size and segmentCount (if
// they aren't already big enough) and rewires the row descriptors,
// filling the distance grid with positive infinity and clearing every
// row's intercept count.
//
// The distance grid is wired row-major but upside down relative to
// image row order: row 0 of the returned rows slice corresponds to the
// last row of pixel memory. This mirrors the source algorithm's layout,
// where outline-space y increases upward but image rows are stored
// top-down; flipping here means the rest of the kernel can work
// entirely in outline-space y without ever special-casing the image's
// inverted axis. Because of that, the final pass in GenerateInto must
// copy s.distances linearly into the image rather than re-indexing it
// by row — re-indexing would flip the image back the wrong way.
func (s *Scratch) reset(size, segmentCount int) {
	n := size * size
	if cap(s.distances) < n {
		s.distances = make([]float32, n)
	} else {
		s.distances = s.distances[:n]
	}
	for i := range s.distances {
		s.distances[i] = inf32
	}

	maxIntercepts := segmentCount * 2
	total := size * maxIntercepts
	if cap(s.rowIntercepts) < total {
		s.rowIntercepts = make([]float32, total)
	} else {
		s.rowIntercepts = s.rowIntercepts[:total]
	}

	if cap(s.rows) < size {
		s.rows = make([]row, size)
	} else {
		s.rows = s.rows[:size]
	}

	firstDistance := n - size
	firstIntercept := 0
	for i := 0; i < size; i++ {
		s.rows[i] = row{
			distances:    s.distances[firstDistance : firstDistance+size],
			intercepts:   s.rowIntercepts[firstIntercept : firstIntercept+maxIntercepts],
			interceptLen: 0,
		}
		firstDistance -= size
		firstIntercept += maxIntercepts
	}
}
