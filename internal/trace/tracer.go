// Package trace extracts pixel contours from 1-bit images.
//
// Contours run along pixel boundaries. Their vertices are the corners of
// pixels, so a pixel (x, y) spans the square from (x, y) to (x+1, y+1).
// Outer boundaries of set regions are traced clockwise (with y pointing
// down), holes counterclockwise.
package trace

import (
	"honnef.co/go/spvec"
)

// Steps to take from a vertex, indexed by its 2×2 pixel block as returned
// by point4.
//
//	index:  0  1  2  3  4  5  6  7  8  9 10 11 12 13 14 15
//	block: 00 00 00 00 01 01 01 01 10 10 10 10 11 11 11 11
//	       00 01 10 11 00 01 10 11 00 01 10 11 00 01 10 11
//	step:   -  r  d  r  u  u  ?  u  l  ?  d  r  l  l  d  -
var (
	stepX = [16]int{0, 1, 0, 1, 0, 0, 0, 0, -1, 0, 0, 1, -1, -1, 0, 0}
	stepY = [16]int{0, 0, 1, 0, -1, -1, 0, -1, 0, 0, 1, 0, 0, 0, 1, 0}

	// For the diagonal blocks 6 and 9 the step depends on the previous
	// one. turn maps the previous block to the block whose step is taken
	// instead.
	turn = [16]int{0, 4, 1, 4, 8, 8, 0, 8, 2, 0, 1, 4, 2, 2, 1, 0}
)

// Tracer finds and traces the contours of a bitmap. Contours are found in
// scanline order, and each contour is found once.
type Tracer struct {
	bm *Bitmap
	// vertical pixel edges of traced contours; bit (x, y) is the edge from
	// vertex (x, y) to (x, y+1)
	seen *Bitmap

	x, y int
	// value of the pixels of the current run
	inside bool
}

// NewTracer returns a tracer for bm. The bitmap must not change while the
// tracer is in use.
func NewTracer(bm *Bitmap) *Tracer {
	return &Tracer{
		bm:   bm,
		seen: NewBitmap(bm.W+1, bm.H),
	}
}

// Next returns the starting vertex of the next contour that hasn't been
// traced yet. Starting vertices are the left ends of runs of set pixels and
// of the clear runs between them. Pixels left of the bitmap count as clear.
func (t *Tracer) Next() (x, y int, ok bool) {
	for t.y < t.bm.H {
		if t.inside {
			t.x = t.bm.NextClear(t.x, t.y)
		} else {
			t.x = t.bm.NextSet(t.x, t.y)
		}

		if t.x < t.bm.W {
			t.inside = !t.inside
			if !t.seen.Get(t.x, t.y) {
				return t.x, t.y, true
			}
			continue
		}

		t.y++
		if t.y >= t.bm.H {
			break
		}
		t.inside = false
		t.x = 0
	}
	return 0, 0, false
}

// Trace follows the contour through the vertex (x, y), which must be the
// left end of a run of set or clear pixels in scanline y, and returns its
// vertices. The first and the last point are both (x, y). If middle is
// true, the midpoint of every pixel edge is included as well.
//
// The traced edges are marked, so that Next doesn't return the contour
// again.
func (t *Tracer) Trace(x, y int, middle bool) []spvec.Point {
	sx, sy := x, y
	// The contour enters the left end of a set run going up and leaves
	// the left end of a clear run going down.
	last := 8
	if t.bm.Get(x, y) {
		last = 4
	}
	first := -1
	// no contour has more edges than the bitmap
	steps := 2 * (t.bm.W + 1) * (t.bm.H + 1)

	pts := []spvec.Point{spvec.Pt(float64(x), float64(y))}
	for ; steps > 0; steps-- {
		idx := t.bm.point4(x, y)
		if idx == 6 || idx == 9 {
			idx = turn[last]
		}
		if first == -1 {
			first = idx
		} else if x == sx && y == sy && idx == first {
			// A contour can pass a diagonal vertex twice, so only a
			// repeated first step closes it.
			return pts
		}
		dx, dy := stepX[idx], stepY[idx]
		if dx == 0 && dy == 0 {
			// not on a contour
			return pts
		}
		if dy != 0 {
			t.seen.Set(x, min(y, y+dy), true)
		}
		if middle {
			pts = append(pts, spvec.Pt(float64(x)+0.5*float64(dx), float64(y)+0.5*float64(dy)))
		}
		x += dx
		y += dy
		last = idx
		pts = append(pts, spvec.Pt(float64(x), float64(y)))
	}
	return pts
}

// Contours traces all remaining contours.
func (t *Tracer) Contours(middle bool) [][]spvec.Point {
	var out [][]spvec.Point
	for {
		x, y, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, t.Trace(x, y, middle))
	}
}
