package spvec

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Intersect returns the point where the segments l and o intersect. End
// points count as part of the segments. Parallel segments never intersect,
// not even when they overlap.
//
// The range checks are done on the unnormalized determinants so that no
// division happens unless there is an intersection.
func (l Line) Intersect(o Line) (Point, bool) {
	p21 := l.P1.Sub(l.P0)
	p43 := o.P1.Sub(o.P0)
	p31 := o.P0.Sub(l.P0)

	det := p21.Y*p43.X - p21.X*p43.Y
	if det == 0 {
		return Point{}, false
	}
	det1 := p31.Y*p43.X - p31.X*p43.Y
	det2 := p21.X*p31.Y - p21.Y*p31.X

	if det > 0 && (det1 < 0 || det1 > det || det2 < 0 || det2 > det) {
		return Point{}, false
	}
	if det < 0 && (det1 > 0 || det1 < det || det2 > 0 || det2 < det) {
		return Point{}, false
	}
	return l.P0.Translate(p21.Mul(det1 / det)), true
}

// Within reports whether pt lies no farther than maxDist from the infinite
// line through l. No square root is taken.
func (l Line) Within(pt Point, maxDist float64) bool {
	n := l.P1.Sub(l.P0).Perp()
	// r = dist(pt, l) * |n|
	r := n.Dot(pt.Sub(l.P0))
	return r*r <= n.Hypot2()*maxDist*maxDist
}
